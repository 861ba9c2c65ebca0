package payment

import (
	"context"
	"log/slog"

	"parivartan/internal/domain/service"

	"github.com/google/uuid"
)

// sandboxProcessor approves every charge. Development only.
type sandboxProcessor struct {
	logger *slog.Logger
}

// NewSandboxProcessor constructs the always-approving processor.
func NewSandboxProcessor(logger *slog.Logger) service.PaymentProcessor {
	return &sandboxProcessor{logger: logger}
}

func (p *sandboxProcessor) Charge(_ context.Context, req *service.ChargeRequest) (*service.ChargeResult, error) {
	transactionID := "sandbox-" + uuid.New().String()

	p.logger.Info("[SandboxPayment] Charge approved",
		slog.String("partner_id", req.PartnerID.String()),
		slog.String("plan_id", req.Plan.ID),
		slog.Float64("amount", req.Plan.Amount),
		slog.String("transaction_id", transactionID),
	)

	return &service.ChargeResult{TransactionID: transactionID}, nil
}
