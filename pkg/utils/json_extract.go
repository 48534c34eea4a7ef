package utils

import "strings"

// ExtractBalancedJSON recovers a structurally balanced JSON object or array
// from raw model output. The model is asked for bare JSON but in practice
// returns prose, markdown fences, or truncated bodies; this pass strips the
// wrapping and repairs unterminated nesting so the caller's json.Unmarshal
// has the best possible odds. It never fails itself: if no opening brace or
// bracket exists, the trimmed input is returned as-is and the caller's parse
// reports the error.
func ExtractBalancedJSON(raw string) string {
	text := strings.TrimSpace(raw)
	if text == "" {
		return "{}"
	}

	text = stripOuterFence(text)

	objectStart := strings.IndexByte(text, '{')
	arrayStart := strings.IndexByte(text, '[')

	startIndex := -1
	var openChar, closeChar byte

	if objectStart >= 0 && (arrayStart < 0 || objectStart < arrayStart) {
		startIndex = objectStart
		openChar, closeChar = '{', '}'
	} else if arrayStart >= 0 {
		startIndex = arrayStart
		openChar, closeChar = '[', ']'
	}

	if startIndex < 0 {
		return text
	}

	depth := 0
	inString := false
	escaped := false

	for i := startIndex; i < len(text); i++ {
		ch := text[i]
		if inString {
			if escaped {
				escaped = false
			} else if ch == '\\' {
				escaped = true
			} else if ch == '"' {
				inString = false
			}
			continue
		}

		switch ch {
		case '"':
			inString = true
		case openChar:
			depth++
		case closeChar:
			depth--
			if depth == 0 {
				return strings.TrimSpace(text[startIndex : i+1])
			}
		}
	}

	// Truncated output: close every level still open. Best-effort repair,
	// not validation; the caller must still parse the result.
	var repaired strings.Builder
	repaired.WriteString(strings.TrimSpace(text[startIndex:]))
	for ; depth > 0; depth-- {
		repaired.WriteByte(closeChar)
	}
	return repaired.String()
}

// stripOuterFence removes the leading fence marker (with its language tag)
// and the trailing one. Only the outermost pair is touched: a global replace
// would corrupt JSON whose string values happen to contain the marker.
func stripOuterFence(text string) string {
	if !strings.HasPrefix(text, "```") {
		return text
	}

	rest := text[3:]
	if nl := strings.IndexByte(rest, '\n'); nl >= 0 {
		rest = rest[nl+1:]
	} else {
		rest = strings.TrimPrefix(rest, "json")
	}
	rest = strings.TrimSpace(rest)

	if strings.HasSuffix(rest, "```") {
		rest = strings.TrimSpace(rest[:len(rest)-3])
	}
	return rest
}
