package contract

import (
	"fmt"

	"go.uber.org/zap"
)

// Violation is the panic value of a broken contract.
type Violation struct {
	Op     string
	Reason string
}

func (v *Violation) Error() string {
	return fmt.Sprintf("rop: %s: %s", v.Op, v.Reason)
}

// Enabled reports whether Require checks are compiled in.
func Enabled() bool {
	return checksEnabled
}

// Require fails with op and reason when cond is false.
func Require(cond bool, op, reason string, fields ...zap.Field) {
	if !checksEnabled || cond {
		return
	}
	Fail(op, reason, fields...)
}

// Fail logs the violation and panics with *Violation.
func Fail(op, reason string, fields ...zap.Field) {
	fields = append(fields,
		zap.String("op", op),
		zap.String("reason", reason),
		zap.Stack("stack"))
	zap.L().Named("rop").Error("contract violation", fields...)

	panic(&Violation{Op: op, Reason: reason})
}
