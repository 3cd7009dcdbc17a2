package keyset

// ValidateFederatedOrdering rejects keyset pagination over a federated target
// whose merge layer cannot guarantee a deterministic global ordering.
func ValidateFederatedOrdering(federated, deterministicOrdering bool) error {
	if federated && !deterministicOrdering {
		return newError(CodeFederatedOrderingUnsafe, "the federated target does not guarantee deterministic merge ordering")
	}
	return nil
}

// ValidateFederatedOffset rejects offset-style pagination over federated
// targets when the deployment disallows it.
func ValidateFederatedOffset(federated, disallowOffset bool) error {
	if federated && disallowOffset {
		return newError(CodeFederatedUnsupported, "offset pagination is disabled for federated targets")
	}
	return nil
}
