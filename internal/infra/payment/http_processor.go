package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"parivartan/internal/domain/service"

	"github.com/pkg/errors"
)

// httpProcessor forwards charges to an external payment gateway. The call
// is opaque: only success plus a transaction identifier comes back.
type httpProcessor struct {
	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewHTTPProcessor constructs the gateway-backed processor.
func NewHTTPProcessor(endpoint string, logger *slog.Logger) service.PaymentProcessor {
	return &httpProcessor{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger,
	}
}

type chargeRequest struct {
	PartnerID string  `json:"partner_id"`
	PlanID    string  `json:"plan_id"`
	Amount    float64 `json:"amount"`
	Method    string  `json:"method"`
}

type chargeResponse struct {
	TransactionID string `json:"transaction_id"`
}

func (p *httpProcessor) Charge(ctx context.Context, req *service.ChargeRequest) (*service.ChargeResult, error) {
	body, err := json.Marshal(chargeRequest{
		PartnerID: req.PartnerID.String(),
		PlanID:    req.Plan.ID,
		Amount:    req.Plan.Amount,
		Method:    req.PaymentMethod,
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, errors.WithStack(err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	p.logger.Info("[HTTPPayment] Submitting charge",
		slog.String("partner_id", req.PartnerID.String()),
		slog.String("plan_id", req.Plan.ID),
	)

	resp, err := p.httpClient.Do(httpReq)
	if err != nil {
		return nil, errors.Wrap(err, "payment gateway request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, errors.Errorf("payment gateway returned status %d", resp.StatusCode)
	}

	var parsed chargeResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, errors.Wrap(err, "failed to decode gateway response")
	}
	if parsed.TransactionID == "" {
		return nil, errors.New("payment gateway returned no transaction id")
	}

	return &service.ChargeResult{TransactionID: parsed.TransactionID}, nil
}
