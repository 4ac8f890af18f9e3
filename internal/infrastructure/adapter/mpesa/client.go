package mpesa

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	errs "github.com/upendo-clinic/donation-ledger/internal/domain/error"
	coreport "github.com/upendo-clinic/donation-ledger/internal/domain/port/core"
	"github.com/upendo-clinic/donation-ledger/internal/domain/port/payment"
	"github.com/upendo-clinic/donation-ledger/internal/infrastructure/config"
)

// Daraja environment base URLs
const (
	sandboxBaseURL    = "https://sandbox.safaricom.co.ke"
	productionBaseURL = "https://api.safaricom.co.ke"
)

// tokenSafetyBuffer is subtracted from the partner-declared TTL so a token
// is never used right at its expiry edge
const tokenSafetyBuffer = 60 * time.Second

// transactionType for paybill STK push requests
const transactionType = "CustomerPayBillOnline"

// Client talks to the Daraja API: OAuth token generation and STK push
// initiation. It implements the payment.Gateway port.
type Client struct {
	cfg          config.MpesaConfig
	baseURL      string
	httpClient   *http.Client
	tokenCache   TokenCache
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewClient creates a Daraja client. Returns a ConfigurationError when any
// required credential is missing, so misconfiguration is caught at startup
// rather than on the first donation.
func NewClient(
	cfg config.MpesaConfig,
	tokenCache TokenCache,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) (*Client, error) {
	if cfg.ConsumerKey == "" || cfg.ConsumerSecret == "" {
		return nil, fmt.Errorf("%w: mpesa consumer key/secret", errs.ErrConfiguration)
	}
	if cfg.Passkey == "" {
		return nil, fmt.Errorf("%w: mpesa passkey", errs.ErrConfiguration)
	}
	if cfg.ShortCode == "" {
		return nil, fmt.Errorf("%w: mpesa short code", errs.ErrConfiguration)
	}
	if cfg.CallbackURL == "" {
		return nil, fmt.Errorf("%w: mpesa callback URL", errs.ErrConfiguration)
	}

	baseURL := sandboxBaseURL
	if cfg.Environment == config.Production {
		baseURL = productionBaseURL
	}

	timeout := cfg.RequestTimeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	return &Client{
		cfg:          cfg,
		baseURL:      baseURL,
		httpClient:   &http.Client{Timeout: timeout},
		tokenCache:   tokenCache,
		timeProvider: timeProvider,
		logger:       logger,
	}, nil
}

// WithBaseURL overrides the partner base URL. Used by tests to point the
// client at a local stub server.
func (c *Client) WithBaseURL(baseURL string) *Client {
	c.baseURL = baseURL
	return c
}

// tokenResponse is the partner's OAuth endpoint response. ExpiresIn is a
// string on the wire ("3599"), not a number.
type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   string `json:"expires_in"`
}

// accessToken returns a cached bearer token, refreshing it when the cached
// expiry (TTL minus the safety buffer) has elapsed. Multiple concurrent
// callers may each trigger a refresh; the last write wins, which is safe.
func (c *Client) accessToken(ctx context.Context) (string, error) {
	if token, ok := c.tokenCache.Get(); ok && c.timeProvider.Now().Before(token.ExpiresAt) {
		return token.AccessToken, nil
	}

	url := c.baseURL + "/oauth/v1/generate?grant_type=client_credentials"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, nil)
	if err != nil {
		return "", errs.NewPartnerAPIError("", "failed to build token request", err)
	}
	req.SetBasicAuth(c.cfg.ConsumerKey, c.cfg.ConsumerSecret)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", errs.NewPartnerAPIError("", "token request failed", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errs.NewPartnerAPIError("", "failed to read token response", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", errs.NewPartnerAPIError(strconv.Itoa(resp.StatusCode),
			fmt.Sprintf("token endpoint returned %d: %s", resp.StatusCode, string(body)), nil)
	}

	var tr tokenResponse
	if err := json.Unmarshal(body, &tr); err != nil {
		return "", errs.NewPartnerAPIError("", "invalid token response", err)
	}
	if tr.AccessToken == "" {
		return "", errs.NewPartnerAPIError("", "token endpoint returned no access token", nil)
	}

	ttlSeconds, err := strconv.Atoi(tr.ExpiresIn)
	if err != nil || ttlSeconds <= 0 {
		ttlSeconds = 3599
	}

	token := Token{
		AccessToken: tr.AccessToken,
		ExpiresAt:   c.timeProvider.Now().Add(time.Duration(ttlSeconds)*time.Second - tokenSafetyBuffer),
	}
	c.tokenCache.Set(token)

	c.logger.Debug("Partner access token refreshed", map[string]any{
		"expires_at": token.ExpiresAt,
	})

	return token.AccessToken, nil
}

// stkPushRequest is the Daraja STK push wire format
type stkPushRequest struct {
	BusinessShortCode string `json:"BusinessShortCode"`
	Password          string `json:"Password"`
	Timestamp         string `json:"Timestamp"`
	TransactionType   string `json:"TransactionType"`
	Amount            int64  `json:"Amount"`
	PartyA            string `json:"PartyA"`
	PartyB            string `json:"PartyB"`
	PhoneNumber       string `json:"PhoneNumber"`
	CallBackURL       string `json:"CallBackURL"`
	AccountReference  string `json:"AccountReference"`
	TransactionDesc   string `json:"TransactionDesc"`
}

// stkPushResponse is the Daraja STK push acknowledgement
type stkPushResponse struct {
	MerchantRequestID   string `json:"MerchantRequestID"`
	CheckoutRequestID   string `json:"CheckoutRequestID"`
	ResponseCode        string `json:"ResponseCode"`
	ResponseDescription string `json:"ResponseDescription"`
	CustomerMessage     string `json:"CustomerMessage"`
	ErrorCode           string `json:"errorCode"`
	ErrorMessage        string `json:"errorMessage"`
}

// InitiateSTKPush requests a push-payment prompt on the payer's phone.
// Response code "0" signals acceptance; anything else is a rejection.
func (c *Client) InitiateSTKPush(ctx context.Context, req payment.STKPushRequest) (*payment.STKPushResult, error) {
	token, err := c.accessToken(ctx)
	if err != nil {
		return nil, err
	}

	timestamp := c.timeProvider.Now().Format("20060102150405")
	password := base64.StdEncoding.EncodeToString([]byte(c.cfg.ShortCode + c.cfg.Passkey + timestamp))

	wireReq := stkPushRequest{
		BusinessShortCode: c.cfg.ShortCode,
		Password:          password,
		Timestamp:         timestamp,
		TransactionType:   transactionType,
		Amount:            req.Amount,
		PartyA:            req.MSISDN,
		PartyB:            c.cfg.ShortCode,
		PhoneNumber:       req.MSISDN,
		CallBackURL:       c.cfg.CallbackURL,
		AccountReference:  req.AccountReference,
		TransactionDesc:   req.TransactionDesc,
	}

	payload, err := json.Marshal(wireReq)
	if err != nil {
		return nil, errs.NewPartnerAPIError("", "failed to encode push request", err)
	}

	url := c.baseURL + "/mpesa/stkpush/v1/processrequest"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, errs.NewPartnerAPIError("", "failed to build push request", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+token)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, errs.NewPartnerAPIError("", "push request failed", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errs.NewPartnerAPIError("", "failed to read push response", err)
	}

	var wireResp stkPushResponse
	if err := json.Unmarshal(body, &wireResp); err != nil {
		return nil, errs.NewPartnerAPIError(strconv.Itoa(resp.StatusCode),
			"invalid push response: "+string(body), err)
	}

	if wireResp.ErrorCode != "" {
		return nil, errs.NewPartnerAPIError(wireResp.ErrorCode, wireResp.ErrorMessage, nil)
	}
	if wireResp.ResponseCode != "0" {
		return nil, errs.NewPartnerAPIError(wireResp.ResponseCode, wireResp.ResponseDescription, nil)
	}

	c.logger.Debug("STK push request accepted", map[string]any{
		"merchant_request_id": wireResp.MerchantRequestID,
		"checkout_request_id": wireResp.CheckoutRequestID,
	})

	return &payment.STKPushResult{
		MerchantRequestID:   wireResp.MerchantRequestID,
		CheckoutRequestID:   wireResp.CheckoutRequestID,
		ResponseCode:        wireResp.ResponseCode,
		ResponseDescription: wireResp.ResponseDescription,
		CustomerMessage:     wireResp.CustomerMessage,
	}, nil
}
