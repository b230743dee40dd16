package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/inventry-dev/inventry/pkg/client"
	"github.com/inventry-dev/inventry/pkg/domain/model"
	"github.com/inventry-dev/inventry/pkg/domain/types"
)

func cmdChat() *cli.Command {
	var serverURL string
	var token string

	return &cli.Command{
		Name:    "chat",
		Aliases: []string{"c"},
		Usage:   "Interactive chat against a running server",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "server-url",
				Usage:       "Base URL of the chat server",
				Value:       "http://localhost:8080",
				Sources:     cli.EnvVars("INVENTRY_SERVER_URL"),
				Destination: &serverURL,
			},
			&cli.StringFlag{
				Name:        "token",
				Usage:       "Bearer token for authentication",
				Sources:     cli.EnvVars("INVENTRY_TOKEN"),
				Destination: &token,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			var opts []client.HTTPOption
			if token != "" {
				opts = append(opts, client.WithToken(token))
			}
			api, err := client.NewHTTP(serverURL, opts...)
			if err != nil {
				return goerr.Wrap(err, "failed to create API client")
			}

			repl := newChatREPL(api)
			return repl.run(ctx)
		},
	}
}

var (
	promptColor    = color.New(color.FgGreen, color.Bold)
	assistantColor = color.New(color.FgCyan)
	patentColor    = color.New(color.FgYellow)
	noticeColor    = color.New(color.FgHiBlack)
	errorColor     = color.New(color.FgRed)
)

type chatREPL struct {
	session *client.Session
	out     *os.File
}

func newChatREPL(api client.API) *chatREPL {
	r := &chatREPL{out: os.Stdout}
	r.session = client.NewSession(api, client.WithNotifier(func(msg string) {
		noticeColor.Fprintln(r.out, msg)
	}))
	return r
}

func (r *chatREPL) run(ctx context.Context) error {
	if err := r.session.Load(ctx); err != nil {
		return goerr.Wrap(err, "failed to load session")
	}

	if id := r.session.Identity(); id != nil {
		fmt.Fprintf(r.out, "Signed in as %s (%s)\n", id.Name, id.Email)
	}
	r.printSelected()
	noticeColor.Fprintln(r.out, `Type a prompt, or /help for commands.`)

	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for {
		promptColor.Fprint(r.out, "> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "/quit" || line == "/exit" {
			break
		}

		if strings.HasPrefix(line, "/") {
			if err := r.command(ctx, line); err != nil {
				errorColor.Fprintln(r.out, err.Error())
			}
			continue
		}

		r.sendPrompt(ctx, line)
	}

	return scanner.Err()
}

func (r *chatREPL) command(ctx context.Context, line string) error {
	cmd, arg, _ := strings.Cut(line, " ")
	arg = strings.TrimSpace(arg)

	switch cmd {
	case "/help":
		fmt.Fprintln(r.out, `Commands:
  /new             create a chat and switch to it
  /list            list chats (newest first)
  /select <n>      switch to the n-th listed chat
  /rename <name>   rename the current chat
  /delete          delete the current chat
  /history         show the current chat's messages
  /quit            exit`)
		return nil

	case "/new":
		chat, err := r.session.CreateAndSelect(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintf(r.out, "Created %q\n", chat.Name)
		return nil

	case "/list":
		selected := r.session.Selected()
		for i, chat := range r.session.Chats() {
			marker := " "
			if selected != nil && chat.ID == selected.ID {
				marker = "*"
			}
			fmt.Fprintf(r.out, "%s %2d. %s (%d messages)\n", marker, i+1, chat.Name, len(chat.Messages))
		}
		return nil

	case "/select":
		n, err := strconv.Atoi(arg)
		if err != nil {
			return goerr.New("usage: /select <number>")
		}
		chats := r.session.Chats()
		if n < 1 || n > len(chats) {
			return goerr.New("no such chat", goerr.V("number", n))
		}
		if err := r.session.Select(chats[n-1].ID); err != nil {
			return err
		}
		r.printSelected()
		return nil

	case "/rename":
		if arg == "" {
			return goerr.New("usage: /rename <name>")
		}
		selected := r.session.Selected()
		if selected == nil {
			return goerr.New("no chat selected")
		}
		if err := r.session.Rename(ctx, selected.ID, arg); err != nil {
			return err
		}
		fmt.Fprintf(r.out, "Renamed to %q\n", arg)
		return nil

	case "/delete":
		selected := r.session.Selected()
		if selected == nil {
			return goerr.New("no chat selected")
		}
		if err := r.session.Delete(ctx, selected.ID); err != nil {
			return err
		}
		r.printSelected()
		return nil

	case "/history":
		selected := r.session.Selected()
		if selected == nil {
			return goerr.New("no chat selected")
		}
		for _, msg := range selected.Messages {
			r.printMessage(&msg)
		}
		return nil

	default:
		return goerr.New("unknown command, try /help", goerr.V("command", cmd))
	}
}

func (r *chatREPL) sendPrompt(ctx context.Context, prompt string) {
	noticeColor.Fprintln(r.out, "Thinking...")

	reply, draft, err := r.session.SendPrompt(ctx, prompt)
	if err != nil {
		errorColor.Fprintln(r.out, err.Error())
		if draft != "" {
			noticeColor.Fprintf(r.out, "Your prompt was not sent: %s\n", draft)
		}
		return
	}

	r.printMessage(reply)
}

func (r *chatREPL) printMessage(msg *model.Message) {
	switch msg.Role {
	case types.RoleUser:
		promptColor.Fprint(r.out, "you: ")
		fmt.Fprintln(r.out, msg.Content)
		return
	default:
		for i, patent := range msg.Patents {
			patentColor.Fprintf(r.out, "[%d] %s", i+1, patent.Title)
			if patent.PublicationNumber != "" {
				patentColor.Fprintf(r.out, " (%s)", patent.PublicationNumber)
			}
			fmt.Fprintln(r.out)
			if patent.Abstract != "" {
				fmt.Fprintf(r.out, "    %s\n", patent.Abstract)
			}
		}
		assistantColor.Fprintln(r.out, msg.Content)
	}
}

func (r *chatREPL) printSelected() {
	if chat := r.session.Selected(); chat != nil {
		fmt.Fprintf(r.out, "Current chat: %s\n", chat.Name)
	}
}
