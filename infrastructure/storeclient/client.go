// Package storeclient acessa a API de lançamentos por HTTP (usado pelo ledgerctl)
package storeclient

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/url"
	"path"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/vfg2006/sales-ledger-api/internal/config"
	"github.com/vfg2006/sales-ledger-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const transactionsPath = "/v1/transactions"

// ErrUpstreamFetch indica que a API não respondeu ou respondeu com erro.
// Não há nova tentativa; quem chama decide o que mostrar.
var ErrUpstreamFetch = errors.New("upstream fetch failed")

type Client interface {
	List(ctx context.Context) ([]domain.Record, error)
	Create(ctx context.Context, input domain.CreateRecordInput) (*domain.Record, error)
}

type StoreClient struct {
	httpClient *http.Client
	baseURL    string
	loc        *time.Location
}

func NewClient(cfg config.Client, loc *time.Location) *StoreClient {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	if loc == nil {
		loc = time.UTC
	}

	return &StoreClient{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL: cfg.BaseURL,
		loc:     loc,
	}
}

// List busca todos os lançamentos. Registros com data inválida ou campos numéricos
// ausentes voltam marcados como Malformed em vez de derrubar a leitura inteira.
func (c *StoreClient) List(ctx context.Context) ([]domain.Record, error) {
	body, err := c.do(ctx, http.MethodGet, nil)
	if err != nil {
		return nil, err
	}

	records, err := DecodeRecords(body, c.loc)
	if err != nil {
		return nil, errors.Wrapf(ErrUpstreamFetch, "erro ao decodificar a resposta: %v", err)
	}

	return records, nil
}

type createResponse struct {
	Message string     `json:"message"`
	Data    wireRecord `json:"data"`
}

func (c *StoreClient) Create(ctx context.Context, input domain.CreateRecordInput) (*domain.Record, error) {
	payload, err := json.Marshal(newWireInput(input, c.loc))
	if err != nil {
		return nil, errors.Wrap(err, "erro ao serializar o lançamento")
	}

	body, err := c.do(ctx, http.MethodPost, payload)
	if err != nil {
		return nil, err
	}

	var response createResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, errors.Wrapf(ErrUpstreamFetch, "erro ao decodificar a resposta: %v", err)
	}

	record := response.Data.toRecord(c.loc)
	return &record, nil
}

func (c *StoreClient) do(ctx context.Context, method string, payload []byte) ([]byte, error) {
	endpoint, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao analisar a URL base")
	}
	endpoint.Path = path.Join(endpoint.Path, transactionsPath)

	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint.String(), reader)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao criar a requisição")
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrapf(ErrUpstreamFetch, "erro ao executar a requisição: %v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrapf(ErrUpstreamFetch, "erro ao ler a resposta: %v", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: body}
	}

	return body, nil
}
