package flag

import (
	"fmt"
	"strings"
)

// StringEnumFlag implements flag.Value. It accepts a value only when it is
// present in the list of the allowed values passed to NewStringEnumFlag.
type StringEnumFlag struct {
	allowed []string
	value   string
}

func NewStringEnumFlag(allowedValues []string, defaultValue string) *StringEnumFlag {
	return &StringEnumFlag{allowed: allowedValues, value: defaultValue}
}

func (flag *StringEnumFlag) Value() string {
	return flag.value
}

func (flag *StringEnumFlag) String() string {
	return flag.value
}

func (flag *StringEnumFlag) Set(value string) error {
	for _, allowed := range flag.allowed {
		if value == allowed {
			flag.value = value
			return nil
		}
	}
	return fmt.Errorf("not a valid value: %v (can be %v)",
		value, strings.Join(flag.allowed, "|"))
}
