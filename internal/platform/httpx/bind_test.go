package httpx

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type bindTarget struct {
	OrderID string `json:"orderId" validate:"required"`
	Status  string `json:"status" validate:"required,oneof=pending delivered"`
	Amount  int    `json:"amount" validate:"gte=0"`
}

func bindReq(body string) *http.Request {
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	r.Header.Set("Content-Type", "application/json")
	return r
}

func TestBindReportsCamelCaseFieldNames(t *testing.T) {
	validate := NewValidator()
	var dst bindTarget

	err := Bind(bindReq(`{"status":"shipped","amount":-1}`), validate, &dst)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.Len(t, verr.Fields, 3)

	byField := make(map[string]FieldError)
	for _, f := range verr.Fields {
		byField[f.Field] = f
	}
	assert.Equal(t, "required", byField["orderId"].Rule)
	assert.Equal(t, "oneof", byField["status"].Rule)
	assert.Equal(t, "pending delivered", byField["status"].Param)
	assert.Equal(t, "gte", byField["amount"].Rule)
	assert.Equal(t, "0", byField["amount"].Param)
}

func TestBindMalformedJSON(t *testing.T) {
	var dst bindTarget
	err := Bind(bindReq(`{"orderId":`), NewValidator(), &dst)
	require.ErrorIs(t, err, ErrMalformedBody)
}

func TestBindValidPayload(t *testing.T) {
	var dst bindTarget
	err := Bind(bindReq(`{"orderId":"#ORD-1","status":"pending","amount":10}`), NewValidator(), &dst)
	require.NoError(t, err)
	assert.Equal(t, "#ORD-1", dst.OrderID)
}

func TestRespondBindErrorShapes(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondBindError(rec, &ValidationError{Fields: []FieldError{{Field: "status", Rule: "oneof"}}})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body ErrorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Validation error", body.Message)
	require.Len(t, body.Errors, 1)
	assert.Equal(t, "status", body.Errors[0].Field)

	rec = httptest.NewRecorder()
	RespondBindError(rec, ErrMalformedBody)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	body = ErrorBody{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Invalid request body", body.Message)
	assert.Empty(t, body.Errors)
}
