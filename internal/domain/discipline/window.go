package discipline

// MatchOrder maps each match id of a season to its position in season order.
type MatchOrder map[string]int

func NewMatchOrder(matchIDs []string) MatchOrder {
	order := make(MatchOrder, len(matchIDs))
	for i, id := range matchIDs {
		if _, exists := order[id]; exists {
			continue
		}
		order[id] = i
	}
	return order
}

// Covers reports whether matchID falls inside the suspension's ban window: the
// MatchesBanned consecutive season matches beginning at StartMatchID.
func (s Suspension) Covers(order MatchOrder, matchID string) bool {
	if s.Status != StatusActive {
		return false
	}

	start, ok := order[s.StartMatchID]
	if !ok {
		return false
	}
	target, ok := order[matchID]
	if !ok {
		return false
	}

	banned := s.MatchesBanned
	if banned < 1 {
		banned = 1
	}
	return target >= start && target < start+banned
}

// CheckMatch returns the first suspension whose window covers matchID.
func CheckMatch(suspensions []Suspension, order MatchOrder, matchID string) SuspensionCheck {
	for _, item := range suspensions {
		if item.Covers(order, matchID) {
			return SuspensionCheck{
				Suspended:    true,
				Reason:       item.Reason,
				SuspensionID: item.ID,
			}
		}
	}
	return SuspensionCheck{}
}
