package trainingapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/mamunbank/bank_trainer_app/internal/apperrors"
	"github.com/mamunbank/bank_trainer_app/internal/core/domain"
	portsrepo "github.com/mamunbank/bank_trainer_app/internal/core/ports/repositories"
)

// Fixed identity fields every create payload carries.
const (
	bankName   = "Mamun Bank"
	branchName = "Markaziy filial"
)

// Operator role labels the backend expects per resource.
const (
	roleLabelCashier         = "Kassir"
	roleLabelFXOperator      = "Valyuta operatori"
	roleLabelCardOperator    = "Plastik operator"
	roleLabelDepositOperator = "Omonat operatori"
)

// Delivery type and card status labels on the wire.
const (
	deliveryLabelBranch  = "Filialdan olish"
	deliveryLabelCourier = "Kuryer orqali"
	cardStatusAccepted   = "Ariza qabul qilindi"
)

// depositTypeLabels maps the local deposit type to the backend's label and
// back.
var depositTypeLabels = map[domain.DepositType]string{
	domain.DepositTerm:     "Muddatli omonat",
	domain.DepositSavings:  "Jamg'arma omonat",
	domain.DepositChildren: "Bolalar omonati",
}

// Client talks to the remote training backend. No retries or backoff: the
// simulator reports a failed call once and keeps its previous state.
type Client struct {
	baseURL    string
	fetchLimit int
	httpClient *http.Client
	logger     *slog.Logger
}

var _ portsrepo.TrainingAPIFacade = (*Client)(nil)

// NewClient builds a training API client for baseURL, fetching at most
// fetchLimit items per list call.
func NewClient(baseURL string, fetchLimit int, logger *slog.Logger) *Client {
	return &Client{
		baseURL:    baseURL,
		fetchLimit: fetchLimit,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		logger:     logger,
	}
}

// list fetches one resource collection and decodes its items into out.
func (c *Client) list(ctx context.Context, resource string, out any) error {
	url := fmt.Sprintf("%s/%s?limit=%d", c.baseURL, resource, c.fetchLimit)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: list %s: %v", apperrors.ErrUpstream, resource, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: list %s: unexpected status %d", apperrors.ErrUpstream, resource, resp.StatusCode)
	}

	var env listEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("%w: list %s: decode: %v", apperrors.ErrUpstream, resource, err)
	}
	if env.Status != http.StatusOK || env.Data.Items == nil {
		return fmt.Errorf("%w: list %s: envelope status %d", apperrors.ErrUpstream, resource, env.Status)
	}
	if err := json.Unmarshal(env.Data.Items, out); err != nil {
		return fmt.Errorf("%w: list %s: decode items: %v", apperrors.ErrUpstream, resource, err)
	}
	return nil
}

// create posts payload to one resource and returns the decoded envelope.
func (c *Client) create(ctx context.Context, resource string, payload any) (*createEnvelope, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	url := fmt.Sprintf("%s/%s", c.baseURL, resource)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: create %s: %v", apperrors.ErrUpstream, resource, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: create %s: read body: %v", apperrors.ErrUpstream, resource, err)
	}
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		var env createEnvelope
		_ = json.Unmarshal(raw, &env)
		if env.Message != "" {
			return nil, fmt.Errorf("%w: create %s: %s", apperrors.ErrUpstream, resource, env.Message)
		}
		return nil, fmt.Errorf("%w: create %s: unexpected status %d", apperrors.ErrUpstream, resource, resp.StatusCode)
	}

	var env createEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("%w: create %s: decode: %v", apperrors.ErrUpstream, resource, err)
	}
	return &env, nil
}

// createdOperation derives the canonical identity from a create envelope,
// preferring the server-provided oper_id over a locally prefixed numeric id.
func createdOperation(env *createEnvelope, prefix string) portsrepo.CreatedOperation {
	operID := env.Data.OperID
	if operID == "" {
		operID = env.OperID
	}
	if operID == "" {
		operID = fmt.Sprintf("%s-%d", prefix, env.Data.ID)
	}
	return portsrepo.CreatedOperation{
		ID:            env.Data.ID,
		OperID:        operID,
		OperationDate: env.Data.OperationDate,
	}
}

func (c *Client) ListClients(ctx context.Context) ([]domain.Client, error) {
	var items []clientItem
	if err := c.list(ctx, "clients", &items); err != nil {
		return nil, err
	}
	clients := make([]domain.Client, 0, len(items))
	for _, item := range items {
		clients = append(clients, domain.Client{
			ClientID:             strconv.FormatInt(item.ID, 10),
			FullName:             item.FullName,
			BirthDate:            item.BirthDate,
			Phone:                item.Phone,
			PassportSeriesNumber: item.PassportSeriesNumber,
			PassportIssuedDate:   item.PassportIssuedDate,
			Address:              item.Address,
			Notes:                item.Notes,
			CreatedAt:            parseWireDate(item.CreatedAt),
			CreatedBy:            "system",
		})
	}
	return clients, nil
}

func (c *Client) CreateClient(ctx context.Context, client domain.Client) (string, error) {
	env, err := c.create(ctx, "clients", createClientPayload{
		FullName:             client.FullName,
		Phone:                client.Phone,
		PassportSeriesNumber: client.PassportSeriesNumber,
		BirthDate:            client.BirthDate,
		PassportIssuedDate:   client.PassportIssuedDate,
		Address:              client.Address,
		Notes:                client.Notes,
	})
	if err != nil {
		return "", err
	}
	if id := env.ClientID.String(); id != "" {
		return id, nil
	}
	if env.Data.ID != 0 {
		return strconv.FormatInt(env.Data.ID, 10), nil
	}
	return "", fmt.Errorf("%w: create clients: response carried no client id", apperrors.ErrUpstream)
}

func (c *Client) ListCashIn(ctx context.Context) ([]domain.CashIn, error) {
	var items []cashItem
	if err := c.list(ctx, "cash-in", &items); err != nil {
		return nil, err
	}
	ops := make([]domain.CashIn, 0, len(items))
	for _, item := range items {
		ops = append(ops, domain.CashIn{
			OperID:      fmt.Sprintf("CI-%d", item.ID),
			OccurredAt:  parseWireDate(item.OperationDate),
			CashierID:   "system",
			CashierName: item.OperatorName,
			ClientID:    item.ClientID.String(),
			ClientName:  item.ClientName,
			Currency:    domain.Currency(item.Currency),
			Amount:      item.Amount,
			Purpose:     item.Purpose,
			Notes:       item.Notes,
			Status:      domain.OperationStatus(item.Status),
			PrintCount:  item.PrintCount,
		})
	}
	return ops, nil
}

func (c *Client) CreateCashIn(ctx context.Context, op domain.CashIn) (portsrepo.CreatedOperation, error) {
	env, err := c.create(ctx, "cash-in", createCashInPayload{
		OperationDate: formatWireDate(op.OccurredAt),
		OperatorName:  op.CashierName,
		ClientID:      parseClientID(op.ClientID),
		Currency:      string(op.Currency),
		Amount:        op.Amount,
		Purpose:       op.Purpose,
		OperatorRole:  roleLabelCashier,
		BankName:      bankName,
		BranchName:    branchName,
		Notes:         op.Notes,
		Status:        string(domain.StatusCompleted),
	})
	if err != nil {
		return portsrepo.CreatedOperation{}, err
	}
	return createdOperation(env, "CI"), nil
}

func (c *Client) ListCashOut(ctx context.Context) ([]domain.CashOut, error) {
	var items []cashItem
	if err := c.list(ctx, "cash-out", &items); err != nil {
		return nil, err
	}
	ops := make([]domain.CashOut, 0, len(items))
	for _, item := range items {
		ops = append(ops, domain.CashOut{
			OperID:      fmt.Sprintf("CO-%d", item.ID),
			OccurredAt:  parseWireDate(item.OperationDate),
			CashierID:   "system",
			CashierName: item.OperatorName,
			ClientID:    item.ClientID.String(),
			ClientName:  item.ClientName,
			Currency:    domain.Currency(item.Currency),
			Amount:      item.Amount,
			Reason:      item.Reason,
			Notes:       item.Notes,
			Status:      domain.OperationStatus(item.Status),
			PrintCount:  item.PrintCount,
		})
	}
	return ops, nil
}

func (c *Client) CreateCashOut(ctx context.Context, op domain.CashOut) (portsrepo.CreatedOperation, error) {
	env, err := c.create(ctx, "cash-out", createCashOutPayload{
		OperationDate: formatWireDate(op.OccurredAt),
		OperatorName:  op.CashierName,
		ClientID:      parseClientID(op.ClientID),
		Currency:      string(op.Currency),
		Amount:        op.Amount,
		Reason:        op.Reason,
		OperatorRole:  roleLabelCashier,
		BankName:      bankName,
		BranchName:    branchName,
		Notes:         op.Notes,
		Status:        string(domain.StatusCompleted),
	})
	if err != nil {
		return portsrepo.CreatedOperation{}, err
	}
	return createdOperation(env, "CO"), nil
}

func (c *Client) ListFX(ctx context.Context) ([]domain.FXOperation, error) {
	var items []fxItem
	if err := c.list(ctx, "currency-exchange", &items); err != nil {
		return nil, err
	}
	ops := make([]domain.FXOperation, 0, len(items))
	for _, item := range items {
		received := item.GivenAmount.Mul(item.ExchangeRate)
		if item.ReceivedAmount != nil {
			received = *item.ReceivedAmount
		}
		ops = append(ops, domain.FXOperation{
			OperID:            fmt.Sprintf("FX-%d", item.ID),
			OccurredAt:        parseWireDate(item.OperationDate),
			OperatorID:        "system",
			OperatorName:      item.OperatorName,
			ClientID:          item.ClientID.String(),
			ClientName:        item.ClientName,
			Direction:         domain.FXDirection(item.OperationType),
			GivenCurrency:     domain.Currency(item.GivenCurrency),
			GivenAmount:       item.GivenAmount,
			ReceivedCurrency:  domain.Currency(item.ReceivedCurrency),
			ReceivedAmount:    received,
			Rate:              item.ExchangeRate,
			CommissionPercent: item.CommissionPercent,
			Notes:             item.Notes,
			Status:            domain.OperationStatus(item.Status),
		})
	}
	return ops, nil
}

func (c *Client) CreateFX(ctx context.Context, op domain.FXOperation) (portsrepo.CreatedOperation, error) {
	env, err := c.create(ctx, "currency-exchange", createFXPayload{
		OperationDate:     formatWireDate(op.OccurredAt),
		OperatorName:      op.OperatorName,
		ClientID:          parseClientID(op.ClientID),
		OperationType:     string(op.Direction),
		GivenCurrency:     string(op.GivenCurrency),
		GivenAmount:       op.GivenAmount,
		ReceivedCurrency:  string(op.ReceivedCurrency),
		ExchangeRate:      op.Rate,
		CommissionPercent: op.CommissionPercent,
		OperatorRole:      roleLabelFXOperator,
		BankName:          bankName,
		BranchName:        branchName,
		Notes:             op.Notes,
		Status:            string(domain.StatusCompleted),
	})
	if err != nil {
		return portsrepo.CreatedOperation{}, err
	}
	return createdOperation(env, "FX"), nil
}

func (c *Client) ListCards(ctx context.Context) ([]domain.CardOpen, error) {
	var items []cardItem
	if err := c.list(ctx, "card-applications", &items); err != nil {
		return nil, err
	}
	ops := make([]domain.CardOpen, 0, len(items))
	for _, item := range items {
		delivery := domain.DeliveryCourier
		if item.DeliveryType == deliveryLabelBranch {
			delivery = domain.DeliveryBranch
		}
		cardState := domain.CardActive
		if item.CardStatus == cardStatusAccepted {
			cardState = domain.CardPending
		}
		ops = append(ops, domain.CardOpen{
			OperID:          fmt.Sprintf("CARD-%d", item.ID),
			OccurredAt:      parseWireDate(item.OperationDate),
			OperatorID:      "system",
			OperatorName:    item.OperatorName,
			ClientID:        item.ClientID.String(),
			ClientName:      item.ClientName,
			CardType:        domain.CardType(item.CardType),
			Currency:        domain.Currency(item.Currency),
			SMSNotification: item.SMSNotification,
			Phone:           item.Phone,
			Delivery:        delivery,
			InitialDeposit:  item.InitialDeposit,
			CardState:       cardState,
			Status:          domain.OperationStatus(item.Status),
		})
	}
	return ops, nil
}

func (c *Client) CreateCard(ctx context.Context, op domain.CardOpen) (portsrepo.CreatedOperation, error) {
	delivery := deliveryLabelCourier
	if op.Delivery == domain.DeliveryBranch {
		delivery = deliveryLabelBranch
	}
	env, err := c.create(ctx, "card-applications", createCardPayload{
		OperationDate:   formatWireDate(op.OccurredAt),
		OperatorName:    op.OperatorName,
		ClientID:        parseClientID(op.ClientID),
		CardType:        string(op.CardType),
		Currency:        string(op.Currency),
		Phone:           op.Phone,
		DeliveryType:    delivery,
		SMSNotification: op.SMSNotification,
		InitialDeposit:  op.InitialDeposit,
		CardStatus:      cardStatusAccepted,
		OperatorRole:    roleLabelCardOperator,
		BankName:        bankName,
		BranchName:      branchName,
		Notes:           op.Notes,
		Status:          string(domain.StatusCompleted),
	})
	if err != nil {
		return portsrepo.CreatedOperation{}, err
	}
	return createdOperation(env, "CARD"), nil
}

func (c *Client) ListDeposits(ctx context.Context) ([]domain.DepositOpen, error) {
	var items []depositItem
	if err := c.list(ctx, "deposits", &items); err != nil {
		return nil, err
	}
	ops := make([]domain.DepositOpen, 0, len(items))
	for _, item := range items {
		ops = append(ops, domain.DepositOpen{
			OperID:       fmt.Sprintf("DEP-%d", item.ID),
			OccurredAt:   parseWireDate(item.OperationDate),
			OperatorID:   "system",
			OperatorName: item.OperatorName,
			ClientID:     item.ClientID.String(),
			ClientName:   item.ClientName,
			DepositType:  depositTypeFromLabel(item.DepositType),
			Currency:     domain.Currency(item.Currency),
			Amount:       item.Amount,
			TermMonths:   item.TermMonths,
			InterestRate: item.InterestRate,
			Status:       domain.OperationStatus(item.Status),
		})
	}
	return ops, nil
}

func (c *Client) CreateDeposit(ctx context.Context, op domain.DepositOpen) (portsrepo.CreatedOperation, error) {
	env, err := c.create(ctx, "deposits", createDepositPayload{
		OperationDate: formatWireDate(op.OccurredAt),
		OperatorName:  op.OperatorName,
		ClientID:      parseClientID(op.ClientID),
		DepositType:   depositTypeLabels[op.DepositType],
		Currency:      string(op.Currency),
		Amount:        op.Amount,
		TermMonths:    op.TermMonths,
		InterestRate:  op.InterestRate,
		OperatorRole:  roleLabelDepositOperator,
		BankName:      bankName,
		BranchName:    branchName,
		Notes:         op.Notes,
		Status:        string(domain.StatusCompleted),
	})
	if err != nil {
		return portsrepo.CreatedOperation{}, err
	}
	return createdOperation(env, "DEP"), nil
}

func (c *Client) ListManagerReport(ctx context.Context) ([]domain.ManagerReportItem, error) {
	var items []domain.ManagerReportItem
	if err := c.list(ctx, "manager-report", &items); err != nil {
		return nil, err
	}
	return items, nil
}

// parseClientID converts the local string id to the numeric id the backend
// expects. Non-numeric ids fall back to zero rather than failing the create.
func parseClientID(id string) int64 {
	n, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return 0
	}
	return n
}

// depositTypeFromLabel maps the backend label to the local deposit type,
// keeping unknown labels as-is.
func depositTypeFromLabel(label string) domain.DepositType {
	for dt, l := range depositTypeLabels {
		if l == label {
			return dt
		}
	}
	return domain.DepositType(label)
}
