package practicum

// CheckResponse verifies the shape of a statuses payload and returns
// its homework records. Per-record validation is left to ParseStatus.
func CheckResponse(payload any) ([]any, error) {
	obj, ok := payload.(map[string]any)
	if !ok {
		return nil, newError(KindResponseFormat, nil, "API response is not an object")
	}

	raw, ok := obj["homeworks"]
	if !ok {
		return nil, newError(KindResponseFormat, nil, `API response has no "homeworks" key`)
	}

	list, ok := raw.([]any)
	if !ok {
		return nil, newError(KindResponseFormat, nil, `"homeworks" value is not a list`)
	}

	return list, nil
}
