package validation

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"lifedash/internal/adapter/http/dto"
	"lifedash/internal/core/domain"
)

var ErrInvalidTransactionPayload = errors.New("invalid transaction payload")

func BuildCreateTransactionInput(userID uint64, req dto.CreateTransactionRequest, loc *time.Location) (domain.CreateTransactionInput, error) {
	txType := domain.TransactionType(req.Type)
	if !txType.Valid() {
		return domain.CreateTransactionInput{}, ErrInvalidTransactionPayload
	}

	amount, err := parseAmount(req.Amount)
	if err != nil {
		return domain.CreateTransactionInput{}, err
	}

	date, err := ParseTime(req.Date, loc)
	if err != nil {
		return domain.CreateTransactionInput{}, ErrInvalidTransactionPayload
	}

	return domain.CreateTransactionInput{
		UserID:     userID,
		Type:       txType,
		Amount:     amount,
		Date:       date,
		Note:       req.Note,
		CategoryID: req.CategoryID,
	}, nil
}

func BuildUpdateTransactionInput(req dto.UpdateTransactionRequest, raw map[string]json.RawMessage, loc *time.Location) (domain.UpdateTransactionInput, error) {
	if !hasAnyField(raw, "type", "amount", "date", "note", "category_id") {
		return domain.UpdateTransactionInput{}, ErrInvalidTransactionPayload
	}

	input := domain.UpdateTransactionInput{
		Note:          req.Note,
		NoteSet:       hasJSONField(raw, "note"),
		CategoryID:    req.CategoryID,
		CategoryIDSet: hasJSONField(raw, "category_id"),
	}

	if hasJSONField(raw, "type") {
		if req.Type == nil {
			return domain.UpdateTransactionInput{}, ErrInvalidTransactionPayload
		}
		txType := domain.TransactionType(*req.Type)
		input.Type = &txType
	}

	if hasJSONField(raw, "amount") {
		if req.Amount == nil {
			return domain.UpdateTransactionInput{}, ErrInvalidTransactionPayload
		}
		amount, err := parseAmount(*req.Amount)
		if err != nil {
			return domain.UpdateTransactionInput{}, err
		}
		input.Amount = &amount
	}

	if hasJSONField(raw, "date") {
		if req.Date == nil {
			return domain.UpdateTransactionInput{}, ErrInvalidTransactionPayload
		}
		date, err := ParseTime(*req.Date, loc)
		if err != nil {
			return domain.UpdateTransactionInput{}, ErrInvalidTransactionPayload
		}
		input.Date = &date
	}

	if input.NoteSet && !isJSONNull(raw["note"]) && req.Note == nil {
		return domain.UpdateTransactionInput{}, ErrInvalidTransactionPayload
	}
	if input.CategoryIDSet && !isJSONNull(raw["category_id"]) && req.CategoryID == nil {
		return domain.UpdateTransactionInput{}, ErrInvalidTransactionPayload
	}

	return input, nil
}

func parseAmount(value dto.Amount) (decimal.Decimal, error) {
	amount, err := value.Decimal()
	if err != nil || !amount.IsPositive() {
		return decimal.Decimal{}, ErrInvalidTransactionPayload
	}
	return amount.Round(2), nil
}
