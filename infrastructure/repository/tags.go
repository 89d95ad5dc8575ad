package repository

import (
	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Tag sets are stored as a jsonb column.

func marshalTags(tags []string) ([]byte, error) {
	if tags == nil {
		tags = []string{}
	}
	return json.Marshal(tags)
}

func unmarshalTags(raw []byte) []string {
	if len(raw) == 0 {
		return []string{}
	}

	var tags []string
	if err := json.Unmarshal(raw, &tags); err != nil {
		logrus.WithError(err).Warn("Malformed tags column, returning empty set")
		return []string{}
	}

	return tags
}
