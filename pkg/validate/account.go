package validate

import (
	"fmt"
	"strconv"

	"github.com/ShiraazMoollatjie/goluhn"
)

// accountPrefix marks savings account numbers issued by this cooperative.
const accountPrefix = "71"

func IsLuna(s string) bool {
	err := goluhn.Validate(s)
	return err == nil
}

// AccountNumber derives a Luhn-valid savings account number from a member id.
func AccountNumber(memberID int) string {
	base := accountPrefix + fmt.Sprintf("%08d", memberID)
	for digit := 0; digit <= 9; digit++ {
		candidate := base + strconv.Itoa(digit)
		if IsLuna(candidate) {
			return candidate
		}
	}
	return base
}
