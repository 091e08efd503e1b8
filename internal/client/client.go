package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client - JSON-RPC клиент узла Solana
type Client struct {
	endpoint   string
	commitment string
	httpClient HTTPClient
}

func NewClient(endpoint string, commitment string, client HTTPClient) *Client {
	return &Client{
		endpoint:   endpoint,
		commitment: commitment,
		httpClient: client,
	}
}

type rpcRequest struct {
	JSONRPC string        `json:"jsonrpc"`
	ID      int           `json:"id"`
	Method  string        `json:"method"`
	Params  []interface{} `json:"params"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type rpcResponse struct {
	Result json.RawMessage `json:"result"`
	Error  *rpcError       `json:"error"`
}

// транзакция в ответе getTransaction (encoding=json)
type transactionResult struct {
	Slot      uint64 `json:"slot"`
	BlockTime int64  `json:"blockTime"`
	Meta      struct {
		Err          interface{} `json:"err"`
		PreBalances  []uint64    `json:"preBalances"`
		PostBalances []uint64    `json:"postBalances"`
	} `json:"meta"`
	Transaction struct {
		Message struct {
			AccountKeys []string `json:"accountKeys"`
		} `json:"message"`
	} `json:"transaction"`
}

type signatureStatusResult struct {
	Value []*struct {
		ConfirmationStatus string      `json:"confirmationStatus"`
		Err                interface{} `json:"err"`
	} `json:"value"`
}

// GetTransaction - чтение транзакции по подписи с требуемым уровнем финализации.
// Пустой результат на запрошенном уровне - авторитетный "нет такой транзакции".
func (c *Client) GetTransaction(ctx context.Context, signature string) (*TransactionRecord, error) {
	params := []interface{}{
		signature,
		map[string]interface{}{
			"commitment":                     c.commitment,
			"encoding":                       "json",
			"maxSupportedTransactionVersion": 0,
		},
	}
	result, err := c.call(ctx, "getTransaction", params)
	if err != nil {
		return nil, err
	}
	if string(result) == "null" {
		return nil, ErrTxNotFound
	}

	var tx transactionResult
	if err := json.Unmarshal(result, &tx); err != nil {
		return nil, fmt.Errorf("failed to decode transaction: %w", err)
	}
	return &TransactionRecord{
		Slot:        tx.Slot,
		BlockTime:   tx.BlockTime,
		Failed:      tx.Meta.Err != nil,
		AccountKeys: tx.Transaction.Message.AccountKeys,
		PreLamports: tx.Meta.PreBalances,
		PosLamports: tx.Meta.PostBalances,
	}, nil
}

// SendTransaction - отправка подписанной транзакции (base64), возвращает подпись
func (c *Client) SendTransaction(ctx context.Context, signedTx string) (string, error) {
	params := []interface{}{
		signedTx,
		map[string]interface{}{
			"encoding":            "base64",
			"preflightCommitment": c.commitment,
		},
	}
	result, err := c.call(ctx, "sendTransaction", params)
	if err != nil {
		return "", err
	}
	var signature string
	if err := json.Unmarshal(result, &signature); err != nil {
		return "", fmt.Errorf("failed to decode signature: %w", err)
	}
	return signature, nil
}

// GetSignatureStatus - статус подтверждения транзакции по подписи
func (c *Client) GetSignatureStatus(ctx context.Context, signature string) (*SignatureStatus, error) {
	params := []interface{}{
		[]string{signature},
		map[string]interface{}{"searchTransactionHistory": true},
	}
	result, err := c.call(ctx, "getSignatureStatuses", params)
	if err != nil {
		return nil, err
	}
	var statuses signatureStatusResult
	if err := json.Unmarshal(result, &statuses); err != nil {
		return nil, fmt.Errorf("failed to decode signature statuses: %w", err)
	}
	if len(statuses.Value) == 0 || statuses.Value[0] == nil {
		return nil, ErrTxNotFound
	}
	return &SignatureStatus{
		Confirmation: statuses.Value[0].ConfirmationStatus,
		Failed:       statuses.Value[0].Err != nil,
	}, nil
}

func (c *Client) call(ctx context.Context, method string, params []interface{}) (json.RawMessage, error) {
	body, err := json.Marshal(rpcRequest{JSONRPC: "2.0", ID: 1, Method: method, Params: params})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrLedgerUnavailable, err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, HandleErrorResponse(resp)
	}

	var rpcResp rpcResponse
	if err := json.NewDecoder(resp.Body).Decode(&rpcResp); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrLedgerUnavailable, err.Error())
	}
	if rpcResp.Error != nil {
		return nil, fmt.Errorf("rpc error %d: %s", rpcResp.Error.Code, rpcResp.Error.Message)
	}
	return rpcResp.Result, nil
}

func HandleErrorResponse(resp *http.Response) error {
	switch resp.StatusCode {
	case http.StatusTooManyRequests:
		return NewRateLimitError(resp.Header)
	default:
		return ErrLedgerUnavailable
	}
}
