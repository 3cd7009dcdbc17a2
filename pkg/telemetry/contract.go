package telemetry

import "sync"

// ContractLevel defines how attribute contract violations are enforced
type ContractLevel string

const (
	ContractOff   ContractLevel = "off"
	ContractWarn  ContractLevel = "warn"
	ContractError ContractLevel = "error"
)

// IsValid checks if the contract level is valid
func (l ContractLevel) IsValid() bool {
	switch l {
	case ContractOff, ContractWarn, ContractError:
		return true
	}
	return false
}

var (
	contractMu    sync.RWMutex
	contracts     = make(map[string][]string)
	contractLevel = ContractWarn
)

// RegisterContract declares the attributes a named span must carry on exit.
func RegisterContract(spanName string, required ...string) {
	contractMu.Lock()
	defer contractMu.Unlock()
	contracts[spanName] = required
}

// SetContractLevel sets the global enforcement level.
func SetContractLevel(level ContractLevel) {
	if !level.IsValid() {
		return
	}
	contractMu.Lock()
	defer contractMu.Unlock()
	contractLevel = level
}

func contractFor(spanName string) ([]string, ContractLevel) {
	contractMu.RLock()
	defer contractMu.RUnlock()
	return contracts[spanName], contractLevel
}
