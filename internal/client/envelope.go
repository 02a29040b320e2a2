package client

import "github.com/lotto-works/ssqfetch/pkg/models"

// The API does not commit to an envelope shape: the draw list has been seen
// at the top level under "result", "list", or "data", and also one level
// down inside an object under those keys. Each known location is a strategy;
// the first one that yields a list wins.
type strategy func(payload map[string]interface{}) ([]interface{}, bool)

func fromKey(key string) strategy {
	return func(payload map[string]interface{}) ([]interface{}, bool) {
		list, ok := payload[key].([]interface{})
		return list, ok
	}
}

func fromNested(key, sub string) strategy {
	return func(payload map[string]interface{}) ([]interface{}, bool) {
		obj, ok := payload[key].(map[string]interface{})
		if !ok {
			return nil, false
		}
		list, ok := obj[sub].([]interface{})
		return list, ok
	}
}

var envelopeStrategies = []strategy{
	fromKey("result"),
	fromNested("result", "list"),
	fromNested("result", "data"),
	fromKey("list"),
	fromNested("list", "list"),
	fromNested("list", "data"),
	fromKey("data"),
	fromNested("data", "list"),
	fromNested("data", "data"),
}

// extractDraws locates the draw list in a decoded payload, preserving item
// order. Non-object items are skipped. The second return is false when no
// strategy matched.
func extractDraws(payload map[string]interface{}) ([]models.RawDraw, bool) {
	for _, s := range envelopeStrategies {
		list, ok := s(payload)
		if !ok {
			continue
		}
		draws := make([]models.RawDraw, 0, len(list))
		for _, item := range list {
			if m, ok := item.(map[string]interface{}); ok {
				draws = append(draws, models.RawDraw(m))
			}
		}
		return draws, true
	}
	return nil, false
}
