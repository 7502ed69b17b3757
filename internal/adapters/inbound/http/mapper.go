package http

import (
	"fmt"

	"github.com/araddon/dateparse"
	"github.com/financialpeak/goalcoach/internal/domain"
)

func toError(err error) ErrorResp {
	errResp := ErrorResp{}
	switch e := err.(type) {
	case *domain.ValidationErr:
		errResp.Error.Code = ErrorCode_BadRequest
		errResp.Error.Message = e.Error()
	case *domain.ExternalServiceErr, *domain.MalformedResponseErr, *domain.ModelUnavailableErr:
		errResp.Error.Code = ErrorCode_UpstreamError
		errResp.Error.Message = e.Error()
	default:
		errResp.Error.Code = ErrorCode_InternalError
		errResp.Error.Message = "internal server error"
	}
	return errResp
}

// toTransactions converts wire transactions to domain transactions, parsing
// dates in whatever common format the client sent.
func toTransactions(payloads []TransactionPayload) ([]domain.Transaction, error) {
	transactions := make([]domain.Transaction, 0, len(payloads))
	for i, p := range payloads {
		tx := domain.Transaction{
			ID:       p.ID,
			Amount:   p.Amount,
			Category: p.Category,
			Merchant: p.Merchant,
		}
		if p.Date != "" {
			date, err := dateparse.ParseAny(p.Date)
			if err != nil {
				return nil, fmt.Errorf("transaction %d has unparseable date %q", i, p.Date)
			}
			tx.Date = date
		}
		transactions = append(transactions, tx)
	}
	return transactions, nil
}

func toTaskGenerationResponse(result domain.TaskGenerationResult) TaskGenerationResponse {
	resp := TaskGenerationResponse{
		Tasks:                make([]DailyTaskPayload, 0, len(result.Tasks)),
		TotalPotentialImpact: result.TotalPotentialImpact,
		AnalysisSummary:      result.AnalysisSummary,
	}
	for _, task := range result.Tasks {
		resp.Tasks = append(resp.Tasks, DailyTaskPayload{
			ID:              task.ID.String(),
			Title:           task.Title,
			Description:     task.Description,
			EstimatedImpact: task.EstimatedImpact,
			Difficulty:      string(task.Difficulty),
			Category:        string(task.Category),
			ActionableSteps: task.ActionableSteps,
		})
	}
	return resp
}
