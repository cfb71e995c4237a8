package handlers

import "strings"

// OperatorRoster is the set of user ids allowed to manage the catalog.
type OperatorRoster struct {
	ids map[string]struct{}
}

func NewOperatorRoster(ids []string) OperatorRoster {
	r := OperatorRoster{ids: make(map[string]struct{}, len(ids))}
	for _, id := range ids {
		if id = strings.TrimSpace(id); id != "" {
			r.ids[id] = struct{}{}
		}
	}
	return r
}

func (r OperatorRoster) IsOperator(userID string) bool {
	_, ok := r.ids[userID]
	return ok
}
