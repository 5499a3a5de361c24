package controllers

import (
	"encoding/json"
	"errors"
	"math"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/danuarta/pos-backend/utils"
)

// Body-error wording is part of the wire contract and differs between the
// first-generation handlers (add_item_to_order, create_order) and the rest.
const (
	msgInvalidBody          = "Invalid request body"
	msgInvalidOrMissingBody = "Invalid or missing request body"
	msgMissingBody          = "Missing request body"
)

// parseBody decodes the POST body into an untyped object so each field can
// be checked in declared order with its own message. Any falsy scalar body
// (null, false, 0, "") counts as missing. A non-object body that still
// parses (array, non-empty string) falls through to the field checks, which
// then fail one at a time, same as a missing field.
func parseBody(c *gin.Context, invalidMsg, missingMsg string) (map[string]interface{}, bool) {
	var body interface{}
	if err := json.NewDecoder(c.Request.Body).Decode(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New(invalidMsg))
		return nil, false
	}
	if body == nil || body == false || body == float64(0) || body == "" {
		utils.RespondError(c, http.StatusBadRequest, errors.New(missingMsg))
		return nil, false
	}
	payload, ok := body.(map[string]interface{})
	if !ok {
		payload = map[string]interface{}{}
	}
	return payload, true
}

// stringField returns the field only when it is a non-empty string; absent,
// empty and wrong-typed values all read as missing.
func stringField(payload map[string]interface{}, key string) (string, bool) {
	v, ok := payload[key].(string)
	if !ok || v == "" {
		return "", false
	}
	return v, true
}

// intField accepts only whole JSON numbers.
func intField(payload map[string]interface{}, key string) (int, bool) {
	v, ok := payload[key].(float64)
	if !ok || v != math.Trunc(v) {
		return 0, false
	}
	return int(v), true
}

// centsField accepts only whole JSON numbers, for money amounts already
// expressed in integer cents. A fractional amount reads as missing.
func centsField(payload map[string]interface{}, key string) (int64, bool) {
	v, ok := payload[key].(float64)
	if !ok || v != math.Trunc(v) {
		return 0, false
	}
	return int64(v), true
}

func requireField(c *gin.Context, msg string) {
	utils.RespondError(c, http.StatusBadRequest, errors.New(msg))
}
