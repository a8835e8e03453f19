package advisory

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"leilaoradar/server/internal/metrics"
	"leilaoradar/server/internal/models"
)

// Error reports a failed analysis: the completion request itself, a
// non-success upstream status, or model output that is not valid JSON.
type Error struct {
	Err error
}

func (e *Error) Error() string { return fmt.Sprintf("advisory analysis failed: %v", e.Err) }

func (e *Error) Unwrap() error { return e.Err }

// Client asks an OpenAI-compatible chat-completion endpoint, in JSON mode,
// for a qualitative read of one property. The model's verdict is relayed as
// parsed; its field set is not validated.
type Client struct {
	logger  *logrus.Logger
	client  *http.Client
	baseURL string
	apiKey  string
	model   string
}

func NewClient(logger *logrus.Logger, baseURL, apiKey, model string, timeout time.Duration) *Client {
	if logger == nil {
		logger = logrus.New()
		logger.SetFormatter(&logrus.JSONFormatter{})
		logger.SetOutput(os.Stdout)
	}

	return &Client{
		logger:  logger,
		client:  &http.Client{Timeout: timeout},
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		model:   model,
	}
}

const promptTemplate = `Você é um analista de leilões de imóveis da Caixa. Avalie o imóvel abaixo como oportunidade de arremate e responda somente com um objeto JSON contendo os campos: "score" (número de 0 a 100), "summary" (texto curto), "positive_points" (lista de textos), "attention_points" (lista de textos) e "strategy" (texto).

Imóvel:
- UF: %s
- Cidade: %s
- Bairro: %s
- Endereço: %s
- Modalidade de venda: %s
- Tipo: %s
- Situação: %s
- Preço: R$ %.2f
- Área: %.2f m²`

// Request and response bodies of the completions API, reduced to the fields
// this client uses.
type completionRequest struct {
	Model          string              `json:"model"`
	Messages       []completionMessage `json:"messages"`
	ResponseFormat responseFormat      `json:"response_format"`
}

type completionMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type completionResponse struct {
	Choices []struct {
		Message completionMessage `json:"message"`
	} `json:"choices"`
}

// Analyze renders the prompt for one record, calls the completion endpoint
// and returns the model's JSON verdict as a generic document.
func (c *Client) Analyze(ctx context.Context, record models.PropertyRecord) (map[string]interface{}, error) {
	prompt := fmt.Sprintf(promptTemplate,
		record.Region, record.City, record.District, record.Street,
		record.Category, record.Kind, record.Status, record.Price, record.Area)

	payload, err := json.Marshal(completionRequest{
		Model:          c.model,
		Messages:       []completionMessage{{Role: "user", Content: prompt}},
		ResponseFormat: responseFormat{Type: "json_object"},
	})
	if err != nil {
		return nil, &Error{Err: fmt.Errorf("failed to marshal request: %v", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewBuffer(payload))
	if err != nil {
		return nil, &Error{Err: fmt.Errorf("failed to create request: %v", err)}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	start := time.Now()
	metrics.AdvisoryRequestsTotal.Inc()

	resp, err := c.client.Do(req)
	if err != nil {
		metrics.AdvisoryFailTotal.Inc()
		c.logger.WithError(err).Error("Completion request failed")
		return nil, &Error{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		metrics.AdvisoryFailTotal.Inc()
		body, _ := io.ReadAll(resp.Body)
		c.logger.WithField("status", resp.StatusCode).Error("Completion API returned non-success status")
		return nil, &Error{Err: fmt.Errorf("completion API returned status %d: %s", resp.StatusCode, string(body))}
	}

	var completion completionResponse
	if err := json.NewDecoder(resp.Body).Decode(&completion); err != nil {
		metrics.AdvisoryFailTotal.Inc()
		return nil, &Error{Err: fmt.Errorf("failed to decode completion: %v", err)}
	}
	if len(completion.Choices) == 0 {
		metrics.AdvisoryFailTotal.Inc()
		return nil, &Error{Err: fmt.Errorf("completion API returned no choices")}
	}

	var report map[string]interface{}
	if err := json.Unmarshal([]byte(completion.Choices[0].Message.Content), &report); err != nil {
		metrics.AdvisoryFailTotal.Inc()
		c.logger.WithError(err).Error("Model output is not valid JSON")
		return nil, &Error{Err: fmt.Errorf("model output is not valid JSON: %v", err)}
	}

	metrics.AdvisoryDurationMs.Observe(float64(time.Since(start).Milliseconds()))
	c.logger.WithField("model", c.model).Info("Completed property analysis")

	return report, nil
}
