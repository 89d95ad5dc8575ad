package store

import "github.com/vfg2006/dealer-crm/internal/domain"

// Reduce is the pure transition function. It builds fresh slices on every
// collection change so previous snapshots stay valid for readers.
//
// Flag rules: a wholesale Set clears Loading, an Added/Updated clears
// ModalLoading, a Deleted clears Loading, ErrorSet clears both. Filter and
// search touch nothing but their own field.
func Reduce(state State, action Action) State {
	switch a := action.(type) {
	case LoadingSet:
		state.Loading = a.Loading
	case ModalLoadingSet:
		state.ModalLoading = a.Loading
	case ErrorSet:
		state.Error = a.Message
		state.Loading = false
		state.ModalLoading = false
	case FilterSet:
		state.Filter = a.Filter
	case SearchSet:
		state.SearchTerm = a.Term

	case CustomersSet:
		state.Customers = a.Customers
		state.Loading = false
	case CustomerAdded:
		state.Customers = prepend(state.Customers, a.Customer)
		state.ModalLoading = false
	case CustomerUpdated:
		state.Customers = replace(state.Customers, a.Customer, func(c *domain.Customer) string { return c.ID })
		state.ModalLoading = false
	case CustomerDeleted:
		state.Customers = remove(state.Customers, a.ID, func(c *domain.Customer) string { return c.ID })
		state.Loading = false

	case LeadsSet:
		state.Leads = a.Leads
		state.Loading = false
	case LeadAdded:
		state.Leads = prepend(state.Leads, a.Lead)
		state.ModalLoading = false
	case LeadUpdated:
		state.Leads = replace(state.Leads, a.Lead, func(l *domain.Lead) string { return l.ID })
		state.ModalLoading = false
	case LeadDeleted:
		state.Leads = remove(state.Leads, a.ID, func(l *domain.Lead) string { return l.ID })
		state.Loading = false

	case VehiclesSet:
		state.Vehicles = a.Vehicles
		state.Loading = false
	case VehicleAdded:
		state.Vehicles = prepend(state.Vehicles, a.Vehicle)
		state.ModalLoading = false
	case VehicleUpdated:
		state.Vehicles = replace(state.Vehicles, a.Vehicle, func(v *domain.Vehicle) string { return v.ID })
		state.ModalLoading = false
	case VehicleDeleted:
		state.Vehicles = remove(state.Vehicles, a.ID, func(v *domain.Vehicle) string { return v.ID })
		state.Loading = false

	case SalesSet:
		state.Sales = a.Sales
		state.Loading = false
	case SaleAdded:
		state.Sales = prepend(state.Sales, a.Sale)
		state.ModalLoading = false

	case InteractionsSet:
		state.Interactions = a.Interactions
		state.Loading = false
	case InteractionAdded:
		state.Interactions = prepend(state.Interactions, a.Interaction)
		state.ModalLoading = false
	}

	return state
}

// prepend keeps collections newest-first, matching the remote ordering.
func prepend[T any](items []*T, item *T) []*T {
	out := make([]*T, 0, len(items)+1)
	out = append(out, item)
	return append(out, items...)
}

// replace swaps the element whose id matches. No match means no change, the
// same slice comes back untouched.
func replace[T any](items []*T, item *T, id func(*T) string) []*T {
	target := id(item)
	for i := range items {
		if id(items[i]) == target {
			out := make([]*T, len(items))
			copy(out, items)
			out[i] = item
			return out
		}
	}
	return items
}

func remove[T any](items []*T, target string, id func(*T) string) []*T {
	out := make([]*T, 0, len(items))
	for _, it := range items {
		if id(it) != target {
			out = append(out, it)
		}
	}
	return out
}
