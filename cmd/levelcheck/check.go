package main

import (
	"fmt"
	"io/fs"
	"sort"

	"github.com/milk9111/wallrun/levels"
	"github.com/milk9111/wallrun/script"
)

var triggerHooks = []string{"on_enter", "on_exit", "on_use"}

// Problem is one defect found in a level file.
type Problem struct {
	Level   string
	Object  string
	Command string
	Message string
}

func (p Problem) String() string {
	s := p.Level
	if p.Object != "" {
		s += ": " + p.Object
	}
	if p.Command != "" {
		s += fmt.Sprintf(": %q", p.Command)
	}
	return s + ": " + p.Message
}

type checker struct {
	fsys         fs.FS
	scripts      func(name string) ([]byte, error)
	defaultSpawn string
	loaded       map[string]*levels.Level
	failed       map[string]error
	problems     []Problem
}

// Check loads each named level from fsys and statically verifies the
// command text of its triggers against the levels and scripts they refer to.
// Commands issued from tengo scripts are not followed.
func Check(fsys fs.FS, names []string, scripts func(string) ([]byte, error), defaultSpawn string) []Problem {
	c := &checker{
		fsys:         fsys,
		scripts:      scripts,
		defaultSpawn: defaultSpawn,
		loaded:       make(map[string]*levels.Level),
		failed:       make(map[string]error),
	}
	for _, name := range names {
		c.checkLevel(name)
	}
	return c.problems
}

func (c *checker) load(name string) (*levels.Level, error) {
	if lvl, ok := c.loaded[name]; ok {
		return lvl, nil
	}
	if err, ok := c.failed[name]; ok {
		return nil, err
	}
	lvl, err := levels.Load(c.fsys, name)
	if err != nil {
		c.failed[name] = err
		return nil, err
	}
	c.loaded[name] = lvl
	return lvl, nil
}

func (c *checker) report(p Problem) {
	c.problems = append(c.problems, p)
}

func (c *checker) checkLevel(name string) {
	lvl, err := c.load(name)
	if err != nil {
		c.report(Problem{Level: name, Message: err.Error()})
		return
	}

	counts := make(map[string]int)
	spawns := 0
	for _, obj := range lvl.Objects {
		if obj.Name != "" {
			counts[obj.Name]++
		}
		if obj.Type == levels.ObjectSpawn {
			spawns++
		}
	}
	if spawns == 0 {
		c.report(Problem{Level: name, Message: "no spawn points"})
	}
	dupes := make([]string, 0)
	for n, count := range counts {
		if count > 1 {
			dupes = append(dupes, n)
		}
	}
	sort.Strings(dupes)
	for _, n := range dupes {
		c.report(Problem{Level: name, Object: n, Message: fmt.Sprintf("name used by %d objects", counts[n])})
	}

	for _, obj := range lvl.Objects {
		if obj.Type != levels.ObjectTrigger {
			continue
		}
		for _, hook := range triggerHooks {
			for _, line := range script.SplitLines(obj.StringProp(hook, "")) {
				c.checkCommand(name, lvl, obj, line)
			}
		}
	}
}

func (c *checker) checkCommand(name string, lvl *levels.Level, obj levels.Object, line string) {
	p := Problem{Level: name, Object: obj.Name, Command: line}
	tokens := script.Tokenize(line)
	if len(tokens) == 0 {
		return
	}
	kind := script.Lookup(tokens[0])
	args := tokens[1:]
	if kind == script.KindUnknown {
		p.Message = "unknown command"
		c.report(p)
		return
	}
	if !kind.AcceptsArgs(len(args)) {
		p.Message = "wrong number of arguments"
		c.report(p)
		return
	}

	switch kind {
	case script.KindSetSpawn:
		if !hasObject(lvl, args[0], levels.ObjectSpawn) {
			p.Message = "spawn point not found"
			c.report(p)
		}
	case script.KindDisable:
		if !hasObject(lvl, args[0], "") {
			p.Message = "target not found"
			c.report(p)
		}
	case script.KindNextLevel:
		target, err := c.load(args[0])
		if err != nil {
			p.Message = err.Error()
			c.report(p)
			return
		}
		spawn := c.defaultSpawn
		if len(args) == 2 {
			spawn = args[1]
		}
		if !hasObject(target, spawn, levels.ObjectSpawn) {
			p.Message = fmt.Sprintf("spawn point %q not found in %s", spawn, args[0])
			c.report(p)
		}
	case script.KindRun:
		if c.scripts == nil {
			return
		}
		if _, err := c.scripts(args[0]); err != nil {
			p.Message = err.Error()
			c.report(p)
		}
	}
}

func hasObject(lvl *levels.Level, name, typ string) bool {
	for _, obj := range lvl.Objects {
		if obj.Name == name && (typ == "" || obj.Type == typ) {
			return true
		}
	}
	return false
}
