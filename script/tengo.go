package script

import (
	"fmt"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"go.uber.org/zap"

	"github.com/milk9111/wallrun/ecs"
)

// runTengo runs a level script. The script sees an `engine` map:
//
//	engine.exec(line)   queue a command for the calling entity
//	engine.log(msg...)  info log
//	engine.self         the calling entity id
func runTengo(name string, src []byte, self ecs.Entity, in *Interpreter) error {
	script := tengo.NewScript(src)
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))
	if err := script.Add("engine", buildTengoEngine(self, in)); err != nil {
		return fmt.Errorf("script: %s: %w", name, err)
	}

	compiled, err := script.Compile()
	if err != nil {
		return fmt.Errorf("script: compile %s: %w", name, err)
	}
	if err := compiled.Run(); err != nil {
		return fmt.Errorf("script: run %s: %w", name, err)
	}
	return nil
}

func buildTengoEngine(self ecs.Entity, in *Interpreter) *tengo.ImmutableMap {
	values := map[string]tengo.Object{}

	values["self"] = &tengo.Int{Value: int64(self)}

	values["exec"] = &tengo.UserFunction{Name: "exec", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) != 1 {
			return nil, tengo.ErrWrongNumArguments
		}
		line := strings.TrimSpace(objectAsString(args[0]))
		if line == "" {
			return tengo.FalseValue, nil
		}
		in.Enqueue(line, self)
		return tengo.TrueValue, nil
	}}

	values["log"] = &tengo.UserFunction{Name: "log", Value: func(args ...tengo.Object) (tengo.Object, error) {
		parts := make([]string, 0, len(args))
		for _, a := range args {
			parts = append(parts, objectAsString(a))
		}
		in.logger.Info("script", zap.String("message", strings.Join(parts, " ")), zap.Stringer("self", self))
		return tengo.UndefinedValue, nil
	}}

	return &tengo.ImmutableMap{Value: values}
}

func objectAsString(obj tengo.Object) string {
	if s, ok := tengo.ToString(obj); ok {
		return s
	}
	return ""
}
