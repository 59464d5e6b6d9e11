package ethereum

import (
	"fmt"
	"strings"
	"sync"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

// escrowABI is the subset of the escrow contract interface the client calls.
const escrowABI = `[
  {"type":"function","name":"createEscrow","stateMutability":"nonpayable",
   "inputs":[
     {"name":"beneficiary","type":"address"},
     {"name":"payers","type":"address[]"},
     {"name":"amountPerPayer","type":"uint256"},
     {"name":"deadline","type":"uint256"},
     {"name":"token","type":"address"}],
   "outputs":[{"name":"escrowId","type":"uint256"}]},
  {"type":"function","name":"getUserEscrows","stateMutability":"view",
   "inputs":[{"name":"user","type":"address"}],
   "outputs":[{"name":"","type":"uint256[]"}]},
  {"type":"function","name":"getEscrowDetails","stateMutability":"view",
   "inputs":[{"name":"escrowId","type":"uint256"}],
   "outputs":[
     {"name":"beneficiary","type":"address"},
     {"name":"amountPerPayer","type":"uint256"},
     {"name":"deadline","type":"uint256"},
     {"name":"beneficiaryClaimed","type":"bool"}]},
  {"type":"function","name":"allPaid","stateMutability":"view",
   "inputs":[{"name":"escrowId","type":"uint256"}],
   "outputs":[{"name":"","type":"bool"}]},
  {"type":"function","name":"depositedOf","stateMutability":"view",
   "inputs":[{"name":"escrowId","type":"uint256"},{"name":"payer","type":"address"}],
   "outputs":[{"name":"","type":"uint256"}]},
  {"type":"function","name":"pay","stateMutability":"payable",
   "inputs":[{"name":"escrowId","type":"uint256"}],"outputs":[]},
  {"type":"function","name":"withdrawRefund","stateMutability":"nonpayable",
   "inputs":[{"name":"escrowId","type":"uint256"}],"outputs":[]},
  {"type":"function","name":"claimBeneficiary","stateMutability":"nonpayable",
   "inputs":[{"name":"escrowId","type":"uint256"}],"outputs":[]}
]`

const (
	methodCreateEscrow     = "createEscrow"
	methodGetUserEscrows   = "getUserEscrows"
	methodGetEscrowDetails = "getEscrowDetails"
	methodAllPaid          = "allPaid"
	methodDepositedOf      = "depositedOf"
	methodPay              = "pay"
	methodWithdrawRefund   = "withdrawRefund"
	methodClaimBeneficiary = "claimBeneficiary"
)

var parseEscrowABI = sync.OnceValues(func() (abi.ABI, error) {
	parsed, err := abi.JSON(strings.NewReader(escrowABI))
	if err != nil {
		return abi.ABI{}, fmt.Errorf("parse escrow abi: %w", err)
	}
	return parsed, nil
})

// EscrowABI returns the parsed contract interface.
func EscrowABI() (abi.ABI, error) {
	return parseEscrowABI()
}
