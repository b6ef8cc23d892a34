package handlers

// envelope is the response shape shared by every endpoint.
type envelope map[string]any

func success(data any) envelope {
	return envelope{"success": true, "data": data}
}

func failure(message string) envelope {
	return envelope{"success": false, "message": message}
}
