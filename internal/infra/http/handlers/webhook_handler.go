package handlers

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/xavierca1/imobi/internal/infra/http/middleware"
	"github.com/xavierca1/imobi/internal/infra/integration/whatsapp"
)

const (
	SignatureHeader  = "X-Hub-Signature-256"
	signaturePrefix  = "sha256="
	maxWebhookBodyMB = 1
)

// WhatsAppWebhookHandler recebe as atualizações de status das mensagens
// enviadas pela Cloud API.
type WhatsAppWebhookHandler struct {
	Secret      string
	VerifyToken string
	Log         *zap.Logger
}

func NewWhatsAppWebhookHandler(secret, verifyToken string, logger *zap.Logger) *WhatsAppWebhookHandler {
	return &WhatsAppWebhookHandler{Secret: secret, VerifyToken: verifyToken, Log: logger}
}

// HandleVerify GET /webhooks/whatsapp, o handshake de inscrição da Meta.
func (h *WhatsAppWebhookHandler) HandleVerify(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	if h.VerifyToken == "" || q.Get("hub.mode") != "subscribe" || q.Get("hub.verify_token") != h.VerifyToken {
		writeErrorResponse(w, http.StatusForbidden, "INVALID_VERIFY_TOKEN", "token de verificação inválido")
		return
	}
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	io.WriteString(w, q.Get("hub.challenge"))
}

// Handle POST /webhooks/whatsapp
func (h *WhatsAppWebhookHandler) Handle(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxWebhookBodyMB<<20))
	if err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_BODY", "erro ao ler corpo")
		return
	}

	if !ValidSignature(h.Secret, body, r.Header.Get(SignatureHeader)) {
		h.Log.Warn("⚠️ webhook do WhatsApp com assinatura inválida", zap.String("ip", getClientIP(r)))
		writeErrorResponse(w, http.StatusUnauthorized, "INVALID_SIGNATURE", "assinatura inválida")
		return
	}

	var payload whatsapp.WebhookPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_JSON", "JSON inválido")
		return
	}

	for _, s := range payload.Statuses() {
		middleware.RecordWhatsAppStatus(s.Status)
		if s.Status == "failed" {
			middleware.RecordIntegrationError("whatsapp")
			h.Log.Warn("⚠️ mensagem do WhatsApp falhou",
				zap.String("message_id", s.ID),
				zap.String("recipient", s.RecipientID))
			continue
		}
		h.Log.Info("📬 status de mensagem do WhatsApp",
			zap.String("message_id", s.ID),
			zap.String("status", s.Status))
	}

	w.WriteHeader(http.StatusOK)
}

// ValidSignature confere o header "sha256=<hex>" contra o HMAC-SHA256 do corpo.
// Sem segredo configurado, nenhuma assinatura é aceita.
func ValidSignature(secret string, body []byte, header string) bool {
	if secret == "" || !strings.HasPrefix(header, signaturePrefix) {
		return false
	}
	got, err := hex.DecodeString(strings.TrimPrefix(header, signaturePrefix))
	if err != nil {
		return false
	}

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return hmac.Equal(got, mac.Sum(nil))
}
