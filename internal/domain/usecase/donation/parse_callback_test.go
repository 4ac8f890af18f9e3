package donation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/upendo-clinic/donation-ledger/internal/domain/error"
)

func TestParseCallback_SuccessEnvelope(t *testing.T) {
	payload := []byte(`{
		"Body": {
			"stkCallback": {
				"MerchantRequestID": "29115-34620561-1",
				"CheckoutRequestID": "ws_CO_191220191020363925",
				"ResultCode": 0,
				"ResultDesc": "The service request is processed successfully.",
				"CallbackMetadata": {
					"Item": [
						{"Name": "Amount", "Value": 1500},
						{"Name": "MpesaReceiptNumber", "Value": "NLJ7RT61SV"},
						{"Name": "TransactionDate", "Value": 20191219102115},
						{"Name": "PhoneNumber", "Value": 254712345678}
					]
				}
			}
		}
	}`)

	result, err := ParseCallback(payload)
	require.NoError(t, err)

	assert.Equal(t, "29115-34620561-1", result.MerchantRequestID)
	assert.Equal(t, "ws_CO_191220191020363925", result.CheckoutRequestID)
	assert.Equal(t, 0, result.ResultCode)
	assert.True(t, result.IsSuccess())
	assert.Equal(t, "NLJ7RT61SV", result.ReceiptNumber)
	require.NotNil(t, result.PaidAmount)
	assert.Equal(t, 1500.0, *result.PaidAmount)
	assert.Contains(t, result.RawMetadata, "MpesaReceiptNumber")
}

func TestParseCallback_FailureEnvelope(t *testing.T) {
	payload := []byte(`{
		"Body": {
			"stkCallback": {
				"MerchantRequestID": "29115-34620561-1",
				"CheckoutRequestID": "ws_CO_191220191020363925",
				"ResultCode": 1032,
				"ResultDesc": "Request cancelled by user"
			}
		}
	}`)

	result, err := ParseCallback(payload)
	require.NoError(t, err)

	assert.False(t, result.IsSuccess())
	assert.Equal(t, 1032, result.ResultCode)
	assert.Equal(t, "Request cancelled by user", result.ResultDesc)
	assert.Empty(t, result.ReceiptNumber)
	assert.Nil(t, result.PaidAmount)
	assert.Empty(t, result.RawMetadata)
}

func TestParseCallback_Malformed(t *testing.T) {
	testCases := []struct {
		name    string
		payload string
	}{
		{"Invalid JSON", `{"Body": {`},
		{"Missing stkCallback", `{"Body": {}}`},
		{"Empty body", `{}`},
		{"Missing CheckoutRequestID", `{"Body": {"stkCallback": {"MerchantRequestID": "x", "ResultCode": 0}}}`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result, err := ParseCallback([]byte(tc.payload))

			assert.Nil(t, result)
			require.Error(t, err)
			assert.True(t, errs.IsCallbackError(err))
			assert.False(t, errs.IsCallbackUnmatched(err))
		})
	}
}

func TestParseCallback_IgnoresWrongValueTypes(t *testing.T) {
	// A string Amount or numeric receipt should be skipped, not coerced.
	payload := []byte(`{
		"Body": {
			"stkCallback": {
				"CheckoutRequestID": "ws_CO_1",
				"ResultCode": 0,
				"ResultDesc": "ok",
				"CallbackMetadata": {
					"Item": [
						{"Name": "Amount", "Value": "1500"},
						{"Name": "MpesaReceiptNumber", "Value": 12345}
					]
				}
			}
		}
	}`)

	result, err := ParseCallback(payload)
	require.NoError(t, err)

	assert.Nil(t, result.PaidAmount)
	assert.Empty(t, result.ReceiptNumber)
}
