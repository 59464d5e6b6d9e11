package ethereum

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"math/big"
	"sync"

	goethereum "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// fakeBackend answers view calls with ABI-packed outputs and records sent
// transactions, standing in for a node.
type fakeBackend struct {
	abi abi.ABI

	mu       sync.Mutex
	outputs  map[string][]interface{}
	calls    []decodedCall
	sent     []*types.Transaction
	reverted bool
	chainID  *big.Int
}

type decodedCall struct {
	method string
	args   []interface{}
	from   common.Address
}

var _ Backend = (*fakeBackend)(nil)

func newFakeBackend(parsed abi.ABI) *fakeBackend {
	return &fakeBackend{
		abi:     parsed,
		outputs: map[string][]interface{}{},
		chainID: big.NewInt(31337),
	}
}

func (f *fakeBackend) respond(method string, values ...interface{}) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.outputs[method] = values
}

func (f *fakeBackend) decode(data []byte) (*abi.Method, []interface{}, error) {
	if len(data) < 4 {
		return nil, nil, errors.New("calldata too short")
	}
	method, err := f.abi.MethodById(data[:4])
	if err != nil {
		return nil, nil, err
	}
	args, err := method.Inputs.Unpack(data[4:])
	if err != nil {
		return nil, nil, err
	}
	return method, args, nil
}

func (f *fakeBackend) CodeAt(context.Context, common.Address, *big.Int) ([]byte, error) {
	return []byte{0x60, 0x80}, nil
}

func (f *fakeBackend) CallContract(_ context.Context, call goethereum.CallMsg, _ *big.Int) ([]byte, error) {
	method, args, err := f.decode(call.Data)
	if err != nil {
		return nil, err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	f.calls = append(f.calls, decodedCall{method: method.Name, args: args, from: call.From})
	values, ok := f.outputs[method.Name]
	if !ok {
		return nil, fmt.Errorf("execution reverted: no canned output for %s", method.Name)
	}

	return method.Outputs.Pack(values...)
}

func (f *fakeBackend) HeaderByNumber(context.Context, *big.Int) (*types.Header, error) {
	return &types.Header{Number: big.NewInt(100), BaseFee: big.NewInt(1_000_000_000)}, nil
}

func (f *fakeBackend) PendingCodeAt(ctx context.Context, account common.Address) ([]byte, error) {
	return f.CodeAt(ctx, account, nil)
}

func (f *fakeBackend) PendingNonceAt(context.Context, common.Address) (uint64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return uint64(len(f.sent)), nil
}

func (f *fakeBackend) SuggestGasPrice(context.Context) (*big.Int, error) {
	return big.NewInt(2_000_000_000), nil
}

func (f *fakeBackend) SuggestGasTipCap(context.Context) (*big.Int, error) {
	return big.NewInt(1_000_000_000), nil
}

func (f *fakeBackend) EstimateGas(context.Context, goethereum.CallMsg) (uint64, error) {
	return 120_000, nil
}

func (f *fakeBackend) SendTransaction(_ context.Context, tx *types.Transaction) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, tx)
	return nil
}

func (f *fakeBackend) FilterLogs(context.Context, goethereum.FilterQuery) ([]types.Log, error) {
	return nil, nil
}

func (f *fakeBackend) SubscribeFilterLogs(context.Context, goethereum.FilterQuery, chan<- types.Log) (goethereum.Subscription, error) {
	return nil, errors.New("subscriptions not supported")
}

func (f *fakeBackend) TransactionReceipt(_ context.Context, hash common.Hash) (*types.Receipt, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for i, tx := range f.sent {
		if !bytes.Equal(tx.Hash().Bytes(), hash.Bytes()) {
			continue
		}
		status := types.ReceiptStatusSuccessful
		if f.reverted {
			status = types.ReceiptStatusFailed
		}
		return &types.Receipt{
			Status:      status,
			TxHash:      hash,
			BlockNumber: big.NewInt(int64(101 + i)),
			GasUsed:     21_000,
		}, nil
	}

	return nil, goethereum.NotFound
}

func (f *fakeBackend) ChainID(context.Context) (*big.Int, error) {
	return f.chainID, nil
}

func (f *fakeBackend) lastSent() *types.Transaction {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.sent) == 0 {
		return nil
	}
	return f.sent[len(f.sent)-1]
}
