package gemini

import "github.com/reusedev/draw-proxy/internal/consts"

// Outcome is what the proxy needs out of a Result.
type Outcome struct {
	Base64Data   string
	FinishReason string
}

func (o Outcome) Succeed() bool { return o.Base64Data != "" }

// Blocked reports whether the upstream refused to produce an image on safety
// grounds. Only meaningful when Succeed is false.
func (o Outcome) Blocked() bool { return o.FinishReason == consts.FinishReasonSafety }

// Parse looks at the first candidate only and takes the first part carrying
// inline data. Absence at any level yields an Outcome that did not succeed.
func Parse(result *Result) Outcome {
	if result == nil || len(result.Candidates) == 0 {
		return Outcome{}
	}
	candidate := result.Candidates[0]
	ret := Outcome{FinishReason: candidate.FinishReason}
	if candidate.Content == nil {
		return ret
	}
	for _, part := range candidate.Content.Parts {
		if part.InlineData != nil {
			ret.Base64Data = part.InlineData.Data
			break
		}
	}
	return ret
}
