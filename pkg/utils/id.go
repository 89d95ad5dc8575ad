package utils

import (
	"fmt"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// GenerateLocalID builds a client-side record id, e.g. "cust-X9hT2w". Local
// ids carry an entity prefix so they are recognizable next to the uuids the
// remote store assigns.
func GenerateLocalID(prefix string) (string, error) {
	suffix, err := gonanoid.Generate(characters, 8)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%s-%s", prefix, suffix), nil
}
