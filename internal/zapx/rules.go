package zapx

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/code-tool/prefix-strip/pkg/enumprefix"
)

// RuleCounts encodes per-rule line counts as a nested object, in rule order.
func RuleCounts(key string, counts map[enumprefix.Rule]int) zap.Field {
	return zap.Object(key, zapcore.ObjectMarshalerFunc(func(encoder zapcore.ObjectEncoder) error {
		for _, rule := range enumprefix.Rules() {
			encoder.AddInt(rule.String(), counts[rule])
		}

		return nil
	}))
}
