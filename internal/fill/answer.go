package fill

// AnswerMissing reports whether an answer value counts as unanswered. The
// gateway's submit path applies the same rule server-side.
func AnswerMissing(v any) bool { return answerMissing(v) }

// answerMissing reports whether a stored answer value counts as unanswered.
// Scalar answers are missing when empty or zero (an untouched rating is 0), a
// list answer when it has no elements, and a categorize answer when no item
// has been placed into any category. Values arriving through JSON decoding
// (float64, []any, map[string]any) are handled alongside their native shapes.
func answerMissing(v any) bool {
	switch a := v.(type) {
	case nil:
		return true
	case string:
		return a == ""
	case int:
		return a == 0
	case float64:
		return a == 0
	case []string:
		return len(a) == 0
	case []any:
		return len(a) == 0
	case map[string][]string:
		for _, items := range a {
			if len(items) > 0 {
				return false
			}
		}
		return true
	case map[string]any:
		for _, items := range a {
			switch list := items.(type) {
			case []string:
				if len(list) > 0 {
					return false
				}
			case []any:
				if len(list) > 0 {
					return false
				}
			}
		}
		return true
	}
	return false
}
