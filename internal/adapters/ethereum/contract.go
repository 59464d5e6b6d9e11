package ethereum

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/bnema/contractlock-cli/internal/domain"
	"github.com/bnema/contractlock-cli/internal/ports"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// Backend is everything the escrow binding needs from a node connection.
// *ethclient.Client satisfies it.
type Backend interface {
	bind.ContractBackend
	bind.DeployBackend
}

var errUnexpectedOutput = errors.New("unexpected contract output")

type Escrow struct {
	address  common.Address
	contract *bind.BoundContract
	backend  bind.DeployBackend
	signer   *Signer
}

var _ ports.EscrowContract = (*Escrow)(nil)

func NewEscrow(address domain.Address, backend Backend, signer *Signer) (*Escrow, error) {
	if backend == nil {
		return nil, errors.New("escrow backend is nil")
	}
	if signer == nil {
		return nil, errors.New("escrow signer is nil")
	}

	contractAddress, err := toCommonAddress(address)
	if err != nil {
		return nil, fmt.Errorf("escrow contract address: %w", err)
	}

	parsed, err := EscrowABI()
	if err != nil {
		return nil, err
	}

	return &Escrow{
		address:  contractAddress,
		contract: bind.NewBoundContract(contractAddress, parsed, backend, backend, backend),
		backend:  backend,
		signer:   signer,
	}, nil
}

func (e *Escrow) CreateEscrow(ctx context.Context, req domain.CreateEscrowRequest) (ports.Transaction, error) {
	beneficiary, err := toCommonAddress(req.Beneficiary)
	if err != nil {
		return nil, fmt.Errorf("beneficiary: %w", err)
	}
	payers, err := toCommonAddresses(req.Payers)
	if err != nil {
		return nil, fmt.Errorf("payers: %w", err)
	}
	token, err := toCommonAddress(req.Token)
	if err != nil {
		return nil, fmt.Errorf("token: %w", err)
	}
	if req.AmountPerPayer == nil {
		return nil, fmt.Errorf("%w: missing amount per payer", domain.ErrInvalidAmount)
	}

	deadline := new(big.Int).SetInt64(req.Deadline.Unix())

	return e.transact(ctx, nil, methodCreateEscrow, beneficiary, payers, req.AmountPerPayer, deadline, token)
}

func (e *Escrow) GetUserEscrows(ctx context.Context, account domain.Address) ([]domain.EscrowID, error) {
	user, err := toCommonAddress(account)
	if err != nil {
		return nil, err
	}

	out, err := e.call(ctx, methodGetUserEscrows, user)
	if err != nil {
		return nil, err
	}

	raw, ok := out[0].([]*big.Int)
	if !ok {
		return nil, fmt.Errorf("%s: %w: %T", methodGetUserEscrows, errUnexpectedOutput, out[0])
	}

	ids := make([]domain.EscrowID, 0, len(raw))
	for _, value := range raw {
		ids = append(ids, domain.EscrowIDFromBig(value))
	}

	return ids, nil
}

func (e *Escrow) GetEscrowDetails(ctx context.Context, id domain.EscrowID) (domain.EscrowDetails, error) {
	escrowID, err := id.BigInt()
	if err != nil {
		return domain.EscrowDetails{}, err
	}

	out, err := e.call(ctx, methodGetEscrowDetails, escrowID)
	if err != nil {
		return domain.EscrowDetails{}, err
	}
	if len(out) != 4 {
		return domain.EscrowDetails{}, fmt.Errorf("%s: %w: %d values", methodGetEscrowDetails, errUnexpectedOutput, len(out))
	}

	beneficiary := *abi.ConvertType(out[0], new(common.Address)).(*common.Address)
	amount := abi.ConvertType(out[1], new(big.Int)).(*big.Int)
	deadline := abi.ConvertType(out[2], new(big.Int)).(*big.Int)
	claimed := *abi.ConvertType(out[3], new(bool)).(*bool)

	if !deadline.IsInt64() {
		return domain.EscrowDetails{}, fmt.Errorf("%s: %w: deadline %s out of range", methodGetEscrowDetails, errUnexpectedOutput, deadline)
	}

	return domain.EscrowDetails{
		Beneficiary:        fromCommonAddress(beneficiary),
		AmountPerPayer:     amount,
		Deadline:           time.Unix(deadline.Int64(), 0),
		BeneficiaryClaimed: claimed,
	}, nil
}

func (e *Escrow) AllPaid(ctx context.Context, id domain.EscrowID) (bool, error) {
	escrowID, err := id.BigInt()
	if err != nil {
		return false, err
	}

	out, err := e.call(ctx, methodAllPaid, escrowID)
	if err != nil {
		return false, err
	}

	return *abi.ConvertType(out[0], new(bool)).(*bool), nil
}

func (e *Escrow) DepositedOf(ctx context.Context, id domain.EscrowID, account domain.Address) (*big.Int, error) {
	escrowID, err := id.BigInt()
	if err != nil {
		return nil, err
	}
	payer, err := toCommonAddress(account)
	if err != nil {
		return nil, err
	}

	out, err := e.call(ctx, methodDepositedOf, escrowID, payer)
	if err != nil {
		return nil, err
	}

	return abi.ConvertType(out[0], new(big.Int)).(*big.Int), nil
}

func (e *Escrow) Pay(ctx context.Context, id domain.EscrowID, value *big.Int) (ports.Transaction, error) {
	escrowID, err := id.BigInt()
	if err != nil {
		return nil, err
	}

	return e.transact(ctx, value, methodPay, escrowID)
}

func (e *Escrow) WithdrawRefund(ctx context.Context, id domain.EscrowID) (ports.Transaction, error) {
	escrowID, err := id.BigInt()
	if err != nil {
		return nil, err
	}

	return e.transact(ctx, nil, methodWithdrawRefund, escrowID)
}

func (e *Escrow) ClaimBeneficiary(ctx context.Context, id domain.EscrowID) (ports.Transaction, error) {
	escrowID, err := id.BigInt()
	if err != nil {
		return nil, err
	}

	return e.transact(ctx, nil, methodClaimBeneficiary, escrowID)
}

func (e *Escrow) call(ctx context.Context, method string, params ...interface{}) ([]interface{}, error) {
	var out []interface{}
	opts := &bind.CallOpts{Context: ctx, From: e.signer.opts.From}
	if err := e.contract.Call(opts, &out, method, params...); err != nil {
		return nil, fmt.Errorf("call %s: %w", method, err)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("call %s: %w: empty", method, errUnexpectedOutput)
	}

	return out, nil
}

func (e *Escrow) transact(ctx context.Context, value *big.Int, method string, params ...interface{}) (ports.Transaction, error) {
	opts := e.signer.transactOpts(ctx, value)

	tx, err := e.contract.Transact(opts, method, params...)
	if err != nil {
		return nil, fmt.Errorf("send %s: %w", method, err)
	}

	return &pendingTx{tx: tx, backend: e.backend}, nil
}

type pendingTx struct {
	tx      *types.Transaction
	backend bind.DeployBackend
}

func (p *pendingTx) Hash() string {
	return p.tx.Hash().Hex()
}

// Wait blocks until the transaction is mined. There is no timeout beyond ctx.
func (p *pendingTx) Wait(ctx context.Context) (domain.Receipt, error) {
	receipt, err := bind.WaitMined(ctx, p.backend, p.tx)
	if err != nil {
		return domain.Receipt{}, fmt.Errorf("wait mined %s: %w", p.Hash(), err)
	}

	result := domain.Receipt{
		TxHash:  receipt.TxHash.Hex(),
		GasUsed: receipt.GasUsed,
		Status:  domain.ReceiptStatusSuccess,
	}
	if receipt.BlockNumber != nil {
		result.BlockNumber = receipt.BlockNumber.Uint64()
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		result.Status = domain.ReceiptStatusFailed
		return result, fmt.Errorf("%w: %s", domain.ErrTransactionReverted, result.TxHash)
	}

	return result, nil
}
