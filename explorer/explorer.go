/**
 * Copyright 2025-present Coinbase Global, Inc.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *  http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package explorer is an interactive, read-only shell over a compiled
// dictionary's intermediate model: reachable tags, pruned groups, and
// resolved message blocks. It performs no code generation; it exists
// so a developer can inspect what the compiler resolved before
// trusting the emitted C.
package explorer

import (
	"fmt"
	"log"
	"strings"

	"github.com/chzyer/readline"

	"fixgen/dispatch"
	"fixgen/model"
	"fixgen/prune"
)

// Model is the compiled state the explorer commands read from.
type Model struct {
	Tags     *model.TagTable
	Pruned   *prune.Result
	Messages []model.Message
	Trie     *dispatch.Trie
}

// Reload recompiles the model from the same input, invoked by the
// "reload" command. The caller supplies it since compiling requires
// the full pipeline, which explorer deliberately does not import.
type Reload func() (*Model, error)

// Run opens a readline shell over m. reload recompiles on demand;
// inputName is shown in the prompt.
func Run(m *Model, inputName string, reload Reload) {
	completer := readline.NewPrefixCompleter(
		readline.PcItem("tags"),
		readline.PcItem("tag"),
		readline.PcItem("groups"),
		readline.PcItem("group"),
		readline.PcItem("messages"),
		readline.PcItem("msg"),
		readline.PcItem("dispatch"),
		readline.PcItem("reload"),
		readline.PcItem("exit"),
	)

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          fmt.Sprintf("fixgen(%s)> ", inputName),
		HistoryFile:     "/tmp/fixgen_history",
		AutoComplete:    completer,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		log.Printf("failed to create readline shell: %v", err)
		return
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err != nil {
			break
		}
		parts := strings.Fields(strings.TrimSpace(line))
		if len(parts) == 0 {
			continue
		}

		switch strings.ToLower(parts[0]) {
		case "tags":
			cmdTags(m)
		case "tag":
			cmdTag(m, parts[1:])
		case "groups":
			cmdGroups(m)
		case "group":
			cmdGroup(m, parts[1:])
		case "messages":
			cmdMessages(m)
		case "msg":
			cmdMsg(m, parts[1:])
		case "dispatch":
			fmt.Print(dispatch.Emit(m.Trie))
		case "reload":
			next, err := reload()
			if err != nil {
				fmt.Printf("reload failed: %v\n", err)
				continue
			}
			*m = *next
			fmt.Println("reloaded")
		case "exit":
			return
		default:
			fmt.Println("unknown command. Available: tags, tag, groups, group, messages, msg, dispatch, reload, exit")
		}
	}
}

func cmdTags(m *Model) {
	for _, name := range m.Pruned.Tags.Keys() {
		tag, _ := m.Pruned.Tags.Get(name)
		fmt.Printf("%-20s %-6d %s\n", name, tag.Value, kindLabel(tag.Kind))
	}
}

func cmdTag(m *Model, args []string) {
	if len(args) == 0 {
		fmt.Println("usage: tag <name>")
		return
	}
	tag, ok := m.Pruned.Tags.Get(args[0])
	if !ok {
		fmt.Printf("tag %q is not reachable\n", args[0])
		return
	}
	fmt.Printf("name=%s value=%d kind=%s dataType=%s\n", tag.Name, tag.Value, kindLabel(tag.Kind), tag.DataType)
	if tag.Kind == model.KindData {
		fmt.Printf("  paired length tag value: %d\n", tag.LengthTagValue)
	}
	if tag.Kind == model.KindDataLength {
		fmt.Printf("  pairs with data tag: %s\n", tag.DataTagName)
	}
}

func cmdGroups(m *Model) {
	for _, name := range m.Pruned.Groups.Keys() {
		g, _ := m.Pruned.Groups.Get(name)
		fmt.Printf("%-30s size=%-16s entries=%d\n", name, g.SizeTagName, len(g.Body))
	}
}

func cmdGroup(m *Model, args []string) {
	if len(args) == 0 {
		fmt.Println("usage: group <canonical-name>")
		return
	}
	g, ok := m.Pruned.Groups.Get(args[0])
	if !ok {
		fmt.Printf("group %q not found\n", args[0])
		return
	}
	printBlock(g.Body)
}

func cmdMessages(m *Model) {
	for _, msg := range m.Messages {
		fmt.Printf("%-20s msgtype=%q entries=%d\n", msg.Name, msg.MsgType, len(msg.Block))
	}
}

func cmdMsg(m *Model, args []string) {
	if len(args) == 0 {
		fmt.Println("usage: msg <name>")
		return
	}
	for _, msg := range m.Messages {
		if msg.Name == args[0] {
			printBlock(msg.Block)
			return
		}
	}
	fmt.Printf("message %q not found\n", args[0])
}

func printBlock(b model.Block) {
	for i, e := range b {
		switch e.Kind {
		case model.EntryData:
			fmt.Printf("  [%d] %-20s DATA lengthTagValue=%d\n", i, e.Name, e.Tag.LengthTagValue)
		case model.EntryGroup:
			fmt.Printf("  [%d] %-20s GROUP -> %s\n", i, e.SizeTagName, e.CanonicalName)
		default:
			fmt.Printf("  [%d] %-20s tag=%d\n", i, e.Name, e.Tag.Value)
		}
	}
}

func kindLabel(k model.TagKind) string {
	switch k {
	case model.KindData:
		return "DATA"
	case model.KindDataLength:
		return "LENGTH"
	case model.KindNumInGroup:
		return "NUMINGROUP"
	default:
		return "REGULAR"
	}
}
