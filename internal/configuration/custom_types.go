package configuration

import (
	"fmt"
	"reflect"

	"github.com/markusressel/ecfan/internal/util"
	"github.com/mitchellh/mapstructure"
)

// RegisterAddress is the index of a register in the EC register bank.
// It can be given as a number or as a string, f.ex. "0x2f".
type RegisterAddress int

func (a RegisterAddress) String() string {
	return util.HexString(int(a))
}

// RegisterAddressHookFunc returns a mapstructure decode hook that parses
// string values (decimal or "0x" prefixed hex) into a RegisterAddress.
func RegisterAddressHookFunc() mapstructure.DecodeHookFuncType {
	registerAddressType := reflect.TypeOf(RegisterAddress(0))

	return func(
		f reflect.Type,
		t reflect.Type,
		data interface{},
	) (interface{}, error) {
		if t != registerAddressType {
			return data, nil
		}

		switch v := data.(type) {
		case string:
			value, err := util.ParseInt(v)
			if err != nil {
				return nil, fmt.Errorf("invalid register address: %w", err)
			}
			return RegisterAddress(value), nil
		case float64:
			return RegisterAddress(int(v)), nil
		default:
			return data, nil
		}
	}
}
