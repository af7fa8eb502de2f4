package validation

import (
	"testing"

	"github.com/stretchr/testify/require"

	"lifedash/internal/adapter/http/dto"
	"lifedash/internal/core/domain"
)

func TestBuildCreateTransactionInput(t *testing.T) {
	req, _ := decode[dto.CreateTransactionRequest](t, `{"type":"expense","amount":"25000.499","date":"2026-03-10","note":"makan"}`)

	input, err := BuildCreateTransactionInput(5, req, wib)

	require.NoError(t, err)
	require.Equal(t, domain.TransactionTypeExpense, input.Type)
	require.Equal(t, "25000.5", input.Amount.String())
	require.Equal(t, "makan", *input.Note)
}

func TestBuildCreateTransactionInput_NumericAmount(t *testing.T) {
	req, _ := decode[dto.CreateTransactionRequest](t, `{"type":"income","amount":1500000,"date":"2026-03-10"}`)

	input, err := BuildCreateTransactionInput(5, req, wib)

	require.NoError(t, err)
	require.Equal(t, "1500000", input.Amount.String())
}

func TestBuildCreateTransactionInput_Rejects(t *testing.T) {
	cases := map[string]string{
		"zero amount":     `{"type":"income","amount":0,"date":"2026-03-10"}`,
		"negative amount": `{"type":"income","amount":"-5","date":"2026-03-10"}`,
		"text amount":     `{"type":"income","amount":"lots","date":"2026-03-10"}`,
		"bad type":        `{"type":"gift","amount":5,"date":"2026-03-10"}`,
		"bad date":        `{"type":"income","amount":5,"date":"kemarin"}`,
	}

	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			req, _ := decode[dto.CreateTransactionRequest](t, body)
			_, err := BuildCreateTransactionInput(5, req, wib)
			require.ErrorIs(t, err, ErrInvalidTransactionPayload)
		})
	}
}

func TestBuildUpdateTransactionInput(t *testing.T) {
	req, raw := decode[dto.UpdateTransactionRequest](t, `{"amount":"10","note":null}`)

	input, err := BuildUpdateTransactionInput(req, raw, wib)

	require.NoError(t, err)
	require.Equal(t, "10", input.Amount.String())
	require.True(t, input.NoteSet)
	require.Nil(t, input.Note)
	require.Nil(t, input.Type)

	req, raw = decode[dto.UpdateTransactionRequest](t, `{}`)
	_, err = BuildUpdateTransactionInput(req, raw, wib)
	require.ErrorIs(t, err, ErrInvalidTransactionPayload)
}
