package app

import (
	"encoding/json"
	"fmt"
)

// CommandKind identifica um comando discreto do MeshWarp.
type CommandKind int

const (
	CmdBarrel CommandKind = iota
	CmdPincushion
	CmdReset
	CmdPause
	CmdResume
	CmdTogglePause
	CmdSnapshot
	CmdSaveMesh
	CmdQuit
)

// Command é a variante fechada consumida pelo loop de renderização. Os
// comandos chegam do teclado e do canal remoto e são aplicados somente
// entre frames, nunca no meio de uma tesselação.
type Command struct {
	Kind     CommandKind
	Strength float32 // usado por barrel/pincushion
}

// String descreve o comando para o HUD e para os logs.
func (c Command) String() string {
	switch c.Kind {
	case CmdBarrel:
		return fmt.Sprintf("barrel %.2f", c.Strength)
	case CmdPincushion:
		return fmt.Sprintf("pincushion %.2f", c.Strength)
	case CmdReset:
		return "reset"
	case CmdPause:
		return "pause"
	case CmdResume:
		return "resume"
	case CmdTogglePause:
		return "pause/resume"
	case CmdSnapshot:
		return "snapshot"
	case CmdSaveMesh:
		return "save-mesh"
	case CmdQuit:
		return "quit"
	}
	return "?"
}

// remoteMessage é o envelope JSON aceito pelo canal de controle remoto.
type remoteMessage struct {
	Cmd      string   `json:"cmd"`
	Strength *float32 `json:"strength,omitempty"`
}

// parseRemoteCommand valida uma mensagem remota e a converte em Command.
// Mensagens malformadas são rejeitadas (o chamador loga e descarta).
func parseRemoteCommand(data []byte, defaultStrength float32) (Command, error) {
	var msg remoteMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return Command{}, fmt.Errorf("mensagem remota ilegível: %w", err)
	}

	strength := defaultStrength
	if msg.Strength != nil {
		strength = *msg.Strength
	}

	switch msg.Cmd {
	case "barrel":
		return Command{Kind: CmdBarrel, Strength: strength}, nil
	case "pincushion":
		return Command{Kind: CmdPincushion, Strength: strength}, nil
	case "reset":
		return Command{Kind: CmdReset}, nil
	case "pause":
		return Command{Kind: CmdPause}, nil
	case "resume":
		return Command{Kind: CmdResume}, nil
	case "snapshot":
		return Command{Kind: CmdSnapshot}, nil
	case "save-mesh":
		return Command{Kind: CmdSaveMesh}, nil
	case "quit":
		return Command{Kind: CmdQuit}, nil
	default:
		return Command{}, fmt.Errorf("comando remoto desconhecido %q", msg.Cmd)
	}
}
