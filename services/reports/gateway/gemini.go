package gateway

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/nagaralert/nagarhub/internal/pkg/logger"
	"github.com/nagaralert/nagarhub/internal/pkg/models"
)

// civicIssuePrompt is the fixed yes/no question sent alongside every image.
const civicIssuePrompt = "Does this image show a genuine civic issue such as " +
	"garbage, potholes, broken streetlights, waterlogging, fire or road damage? " +
	"Answer YES or NO first, then explain briefly."

const (
	maxExplanationLen = 200

	// The model does not expose a per-answer score on this endpoint.
	defaultConfidence = 0.95
)

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text       string            `json:"text,omitempty"`
	InlineData *geminiInlineData `json:"inline_data,omitempty"`
}

type geminiInlineData struct {
	MimeType string `json:"mime_type"`
	Data     string `json:"data"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
		FinishReason string `json:"finishReason"`
	} `json:"candidates"`
	PromptFeedback struct {
		BlockReason string `json:"blockReason"`
	} `json:"promptFeedback"`
}

// VerifyImage asks the vision model whether the image depicts a genuine
// civic issue. The verdict is the presence of the literal token "YES" in the
// uppercased response; anything else is a NO. A safety-filter suppression is
// a successful low-confidence result, not an error.
func (g *ReportGW) VerifyImage(ctx context.Context, imageBytes []byte, mimeType string) (*models.VerificationResult, error) {
	reqBody := geminiRequest{
		Contents: []geminiContent{{
			Parts: []geminiPart{
				{InlineData: &geminiInlineData{
					MimeType: mimeType,
					Data:     base64.StdEncoding.EncodeToString(imageBytes),
				}},
				{Text: civicIssuePrompt},
			},
		}},
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal verification request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/models/%s:generateContent?key=%s",
		g.gemini.BaseURL, g.cfg.Gemini.Model, g.cfg.Gemini.APIKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create verification request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.gemini.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("content verifier unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("content verifier returned status %d", resp.StatusCode)
	}

	var result geminiResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode verifier response: %w", err)
	}

	// Safety layer suppressed the output entirely.
	if result.PromptFeedback.BlockReason != "" || len(result.Candidates) == 0 ||
		(result.Candidates[0].FinishReason == "SAFETY" && len(result.Candidates[0].Content.Parts) == 0) {
		logger.WarnCtx(ctx, "Image verification blocked by safety filters",
			logger.String("block_reason", result.PromptFeedback.BlockReason))
		return &models.VerificationResult{
			Verified:    false,
			Explanation: "Image flagged by safety filters",
			Confidence:  0.0,
		}, nil
	}

	var text strings.Builder
	for _, part := range result.Candidates[0].Content.Parts {
		text.WriteString(part.Text)
	}

	return classifyVerdict(text.String()), nil
}

// classifyVerdict interprets the raw model response. Absence of the "YES"
// token, even in an irrelevant answer, is a NO.
func classifyVerdict(text string) *models.VerificationResult {
	verified := strings.Contains(strings.ToUpper(text), "YES")

	explanation := strings.ReplaceAll(text, "YES", "")
	explanation = strings.ReplaceAll(explanation, "NO", "")
	explanation = strings.TrimSpace(strings.Trim(strings.TrimSpace(explanation), ".,:"))
	if len(explanation) > maxExplanationLen {
		explanation = explanation[:maxExplanationLen]
	}

	return &models.VerificationResult{
		Verified:    verified,
		Explanation: explanation,
		Confidence:  defaultConfidence,
	}
}
