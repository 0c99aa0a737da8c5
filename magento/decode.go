package magento

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"

	"github.com/mitchellh/mapstructure"
)

// Store configurations disagree on scalar types (value_index as "12" or 12,
// option values as numbers, prices as strings). The graph is decoded into a
// generic tree first and then mapped with weak typing, so "" and "12.5"
// land in numeric fields as 0 and 12.5.

func numberToStringHook() mapstructure.DecodeHookFunc {
	return func(f, t reflect.Type, data interface{}) (interface{}, error) {
		if t.Kind() != reflect.String {
			return data, nil
		}
		switch f.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
			reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			return fmt.Sprint(data), nil
		case reflect.Float32, reflect.Float64:
			return strconv.FormatFloat(reflect.ValueOf(data).Float(), 'f', -1, 64), nil
		}
		return data, nil
	}
}

var graphDecodeHook = mapstructure.ComposeDecodeHookFunc(
	numberToStringHook(),
)

// decodeGraph maps a raw GraphQL data payload onto out.
func decodeGraph(raw json.RawMessage, out interface{}) error {
	var tree interface{}
	if err := json.Unmarshal(raw, &tree); err != nil {
		return fmt.Errorf("decode graph: %w", err)
	}
	cfg := &mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		DecodeHook:       graphDecodeHook,
		Result:           out,
		TagName:          "json",
	}
	dec, err := mapstructure.NewDecoder(cfg)
	if err != nil {
		return err
	}
	if err := dec.Decode(tree); err != nil {
		return fmt.Errorf("decode graph: %w", err)
	}
	return nil
}
