package advisory

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"leilaoradar/server/internal/models"
)

func record() models.PropertyRecord {
	return models.PropertyRecord{
		ID:       3,
		Region:   "SP",
		City:     "Santos",
		District: "Gonzaga",
		Street:   "Rua Marcílio Dias, 91",
		Category: "Leilão SFI",
		Kind:     "Apartamento",
		Status:   "Ocupado",
		Price:    298000,
		Area:     78,
	}
}

func completionWith(content string) string {
	body, _ := json.Marshal(map[string]interface{}{
		"choices": []map[string]interface{}{
			{"message": map[string]string{"role": "assistant", "content": content}},
		},
	})
	return string(body)
}

func TestAnalyze(t *testing.T) {
	var gotReq completionRequest
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		gotAuth = r.Header.Get("Authorization")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(completionWith(`{"score": 78, "summary": "Bom custo-benefício", "positive_points": ["preço abaixo da avaliação"], "attention_points": ["imóvel ocupado"], "strategy": "visitar antes do leilão"}`)))
	}))
	defer server.Close()

	client := NewClient(nil, server.URL, "test-key", "gpt-4o-mini", 5*time.Second)

	report, err := client.Analyze(context.Background(), record())
	assert.NoError(t, err)

	assert.Equal(t, "Bearer test-key", gotAuth)
	assert.Equal(t, "gpt-4o-mini", gotReq.Model)
	assert.Equal(t, "json_object", gotReq.ResponseFormat.Type)
	assert.Len(t, gotReq.Messages, 1)
	assert.Contains(t, gotReq.Messages[0].Content, "Santos")
	assert.Contains(t, gotReq.Messages[0].Content, "R$ 298000.00")
	assert.Contains(t, gotReq.Messages[0].Content, "Ocupado")

	assert.Equal(t, 78.0, report["score"])
	assert.Equal(t, "Bom custo-benefício", report["summary"])
	assert.Equal(t, []interface{}{"imóvel ocupado"}, report["attention_points"])
}

func TestAnalyzeRelaysUnknownFields(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(completionWith(`{"score": "alto", "veredicto": "comprar"}`)))
	}))
	defer server.Close()

	client := NewClient(nil, server.URL, "test-key", "gpt-4o-mini", 5*time.Second)

	// The model's field set is relayed untouched, even when it ignores the
	// requested shape.
	report, err := client.Analyze(context.Background(), record())
	assert.NoError(t, err)
	assert.Equal(t, "alto", report["score"])
	assert.Equal(t, "comprar", report["veredicto"])
}

func TestAnalyzeUpstreamStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error": {"message": "invalid api key"}}`))
	}))
	defer server.Close()

	client := NewClient(nil, server.URL, "bad-key", "gpt-4o-mini", 5*time.Second)

	_, err := client.Analyze(context.Background(), record())
	assert.Error(t, err)

	var advErr *Error
	assert.ErrorAs(t, err, &advErr)
	assert.Contains(t, err.Error(), "401")
}

func TestAnalyzeRejectsNonJSONOutput(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(completionWith("não consigo avaliar este imóvel")))
	}))
	defer server.Close()

	client := NewClient(nil, server.URL, "test-key", "gpt-4o-mini", 5*time.Second)

	_, err := client.Analyze(context.Background(), record())
	assert.Error(t, err)

	var advErr *Error
	assert.ErrorAs(t, err, &advErr)
}

func TestAnalyzeNoChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices": []}`))
	}))
	defer server.Close()

	client := NewClient(nil, server.URL, "test-key", "gpt-4o-mini", 5*time.Second)

	_, err := client.Analyze(context.Background(), record())
	assert.Error(t, err)

	var advErr *Error
	assert.ErrorAs(t, err, &advErr)
}
