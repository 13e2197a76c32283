package entity

// Preferences is the per-user accepted-publication document, one per user,
// keyed by the user id.
type Preferences struct {
	AcceptedOffers   []string `json:"accepted_offers" firestore:"acceptedOffers"`
	AcceptedRequests []string `json:"accepted_requests" firestore:"acceptedRequests"`
}

// ToggleMember flips membership of value in the given set and reports
// whether the value ended up present.
func ToggleMember(set []string, value string) ([]string, bool) {
	out := make([]string, 0, len(set)+1)
	found := false
	for _, v := range set {
		if v == value {
			found = true
			continue
		}
		out = append(out, v)
	}
	if found {
		return out, false
	}
	return append(out, value), true
}
