// Package game plays one provably fair round of a generalized
// rock-paper-scissors game against the computer.
//
// A round moves through four states:
//
//	AwaitingInput -> Committed -> AwaitingHumanMove -> Resolved
//
// The move list is validated and the outcome table shown first. The computer
// then commits to its move and only the HMAC digest is shown. A round that
// fails while committing stops in the Committed state with nothing shown. The human picks
// a move from a numbered menu, after which the computer's move and the HMAC
// key are revealed so the digest can be checked.
//
// # Basic Usage
//
//	g := game.New(game.Config{
//	    Engine: commit.NewEngine(nil),
//	    Input:  console.NewReader(os.Stdin, os.Stdout),
//	    Output: console.NewWriter(os.Stdout, true),
//	    Logger: logger,
//	})
//	result, err := g.Play(ctx, []string{"rock", "paper", "scissors"})
//
// # Deterministic Testing
//
// Inject a fixed commit.Source into the engine, a scripted Input and a
// quartz.Mock clock to make every round reproducible.
package game
