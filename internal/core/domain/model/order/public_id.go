package order

import (
	"fmt"
	"strings"

	"canteen/internal/pkg/errs"
)

// PublicIDLength is the length of the human-facing order token printed
// on receipts and read out at the counter.
const PublicIDLength = 4

// PublicIDCharset is the alphabet public tokens are drawn from.
// 36^4 possible tokens keeps collisions rare among the few thousand
// orders retained at any time.
const PublicIDCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// ValidatePublicID checks that a token has the expected length and
// draws only from the public ID alphabet.
func ValidatePublicID(publicID string) error {
	if publicID == "" {
		return errs.NewValueIsRequiredError("publicId")
	}

	if len(publicID) != PublicIDLength {
		return errs.NewValueIsInvalidErrorWithCause(
			"publicId",
			fmt.Errorf("%q is not %d characters long", publicID, PublicIDLength),
		)
	}

	for _, r := range publicID {
		if !strings.ContainsRune(PublicIDCharset, r) {
			return errs.NewValueIsInvalidErrorWithCause(
				"publicId",
				fmt.Errorf("%q contains characters outside the token alphabet", publicID),
			)
		}
	}

	return nil
}
