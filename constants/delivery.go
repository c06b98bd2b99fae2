package constants

import (
	"strings"
)

// DeliveryType is the closed set of delivery options offered in the editing
// stage. The extraction engine never populates these; they are chosen by the
// user after extraction.
type DeliveryType string

const (
	CashOnDelivery DeliveryType = "Cash on Delivery"
	Prepaid        DeliveryType = "Prepaid"
	SelfPickup     DeliveryType = "Self Pickup"
	FreeDelivery   DeliveryType = "Free Delivery"
)

var allDeliveryTypes = []DeliveryType{
	CashOnDelivery,
	Prepaid,
	SelfPickup,
	FreeDelivery,
}

// suggestedFees holds the default fee (in kyat) pre-filled when a delivery
// type is selected. The user may override it unless the type is free.
var suggestedFees = map[DeliveryType]int{
	CashOnDelivery: 4500,
	Prepaid:        1500,
	SelfPickup:     0,
	FreeDelivery:   0,
}

func DeliveryTypes() []string {
	result := make([]string, len(allDeliveryTypes))
	for i, dt := range allDeliveryTypes {
		result[i] = string(dt)
	}
	return result
}

// CanonicalizeDelivery maps free-form input to a known delivery type.
func CanonicalizeDelivery(input string) (DeliveryType, bool) {
	if input == "" {
		return "", false
	}

	normalized := strings.ToLower(strings.TrimSpace(input))

	synonyms := map[string]DeliveryType{
		"cod":            CashOnDelivery,
		"cash":           CashOnDelivery,
		"online payment": Prepaid,
		"paid":           Prepaid,
		"pickup":         SelfPickup,
		"self pick up":   SelfPickup,
		"free":           FreeDelivery,
	}

	if dt, ok := synonyms[normalized]; ok {
		return dt, true
	}

	for _, dt := range allDeliveryTypes {
		if normalized == strings.ToLower(string(dt)) {
			return dt, true
		}
	}

	return "", false
}

// SuggestedFee returns the default fee for a delivery type.
func SuggestedFee(dt DeliveryType) int {
	return suggestedFees[dt]
}

// IsFree reports whether the delivery type never carries a fee.
// Invariant: deliveryFee == 0 whenever IsFree(deliveryType).
func IsFree(dt DeliveryType) bool {
	return dt == SelfPickup || dt == FreeDelivery
}
