package chain

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/superstar-lottery/stardeploy/internal/domain"
	"github.com/superstar-lottery/stardeploy/internal/usecase"
)

const (
	keyName        = "stardeploy"
	keyringBackend = "test"
	gasAdjustment  = "1.3"
)

// SessionFactory opens signing sessions backed by the network's daemon CLI.
// The mnemonic is imported into a throwaway keyring that Close removes.
type SessionFactory struct {
	runner  Runner
	log     *slog.Logger
	tempDir string // empty means the system temp dir

	// dial is replaced in tests
	dial func(ctx context.Context, url string, log *slog.Logger) (*CometClient, error)
}

// NewSessionFactory creates a new SessionFactory
func NewSessionFactory(runner Runner, log *slog.Logger) *SessionFactory {
	return &SessionFactory{
		runner: runner,
		log:    log.With("component", "SessionFactory"),
		dial:   DialComet,
	}
}

// Open imports the key, checks its address prefix and verifies the node
func (f *SessionFactory) Open(ctx context.Context, req usecase.SessionRequest) (usecase.SigningSession, error) {
	if req.Secret.Empty() {
		return nil, errors.New("no mnemonic provided (set MNEMONIC or STARDEPLOY_MNEMONIC)")
	}
	if req.Profile.Daemon == "" {
		return nil, fmt.Errorf("no daemon binary configured for %s", req.Profile.Name)
	}

	home, err := os.MkdirTemp(f.tempDir, "keyring-")
	if err != nil {
		return nil, fmt.Errorf("failed to create keyring home: %w", err)
	}

	s := &session{
		runner: f.runner,
		log:    f.log.With("network", req.Profile.Name),
		home:   home,
		info: domain.Session{
			Profile: req.Profile,
			Gas:     req.Gas,
		},
	}

	if err := s.importKey(ctx, req.Secret, req.Profile.CoinType); err != nil {
		_ = s.Close()
		return nil, err
	}
	if err := domain.ValidateAddress(s.info.Address, req.Profile.AddressPrefix); err != nil {
		_ = s.Close()
		return nil, err
	}

	client, err := f.dial(ctx, req.Profile.RPCURL, f.log)
	if err != nil {
		_ = s.Close()
		return nil, err
	}
	s.rpc = client
	if err := client.CheckChainID(ctx, req.Profile.ChainID); err != nil {
		_ = s.Close()
		return nil, err
	}

	s.log.Info("signing session opened", "address", s.info.Address, "gasPrice", req.Gas.String())
	return s, nil
}

// session is one network-bound signer; it is not safe for concurrent use
type session struct {
	runner Runner
	rpc    *CometClient
	log    *slog.Logger
	home   string
	info   domain.Session
}

func (s *session) Info() domain.Session {
	return s.info
}

func (s *session) importKey(ctx context.Context, secret domain.SecretPhrase, coinType uint32) error {
	daemon := s.info.Profile.Daemon

	_, err := s.runner.Run(ctx, strings.NewReader(secret.Reveal()+"\n"), daemon,
		"keys", "add", keyName, "--recover",
		"--keyring-backend", keyringBackend,
		"--home", s.home,
		"--coin-type", strconv.FormatUint(uint64(coinType), 10),
	)
	if err != nil {
		// the daemon may echo the mnemonic on failure, so the output is dropped
		return errors.New("failed to import mnemonic into keyring")
	}

	out, err := s.runner.Run(ctx, nil, daemon,
		"keys", "show", keyName, "-a",
		"--keyring-backend", keyringBackend,
		"--home", s.home,
	)
	if err != nil {
		return fmt.Errorf("failed to read signer address: %w", err)
	}
	s.info.Address = strings.TrimSpace(string(out))
	return nil
}

// Upload stores the artifact and returns its code id
func (s *session) Upload(ctx context.Context, req domain.UploadRequest) (*usecase.UploadResult, error) {
	path := filepath.Join(s.home, "contract.wasm")
	if err := os.WriteFile(path, req.Artifact, 0600); err != nil {
		return nil, fmt.Errorf("failed to stage artifact: %w", err)
	}

	res, tx, err := s.broadcast(ctx, "store", path)
	if err != nil {
		if tx != nil {
			return &usecase.UploadResult{Tx: *tx}, err
		}
		return nil, err
	}

	// a committed store without a code id is reported by the caller with the tx attached
	codeID, err := codeIDFromEvents(res.TxResult.Events)
	if err != nil {
		s.log.Warn("could not read code id", "tx", tx.TxHash, "error", err)
	}
	return &usecase.UploadResult{CodeID: codeID, Tx: *tx}, nil
}

// Instantiate creates a contract from payload
func (s *session) Instantiate(ctx context.Context, payload domain.InstantiatePayload) (*usecase.InstantiateResult, error) {
	msg, err := payload.Encode()
	if err != nil {
		return nil, err
	}

	args := []string{"instantiate", strconv.FormatUint(payload.CodeID, 10), string(msg), "--label", payload.Label}
	if payload.Admin {
		args = append(args, "--admin", s.info.Address)
	} else {
		args = append(args, "--no-admin")
	}

	res, tx, err := s.broadcast(ctx, args...)
	if err != nil {
		if tx != nil {
			return &usecase.InstantiateResult{Tx: *tx}, err
		}
		return nil, err
	}

	addr, err := contractAddressFromEvents(res.TxResult.Events)
	if err != nil {
		s.log.Warn("could not read contract address", "tx", tx.TxHash, "error", err)
	}
	return &usecase.InstantiateResult{ContractAddress: addr, Tx: *tx}, nil
}

// Execute runs the execute message against payload.Contract
func (s *session) Execute(ctx context.Context, payload domain.ExecutePayload) (*domain.TxResult, error) {
	msg, err := payload.Encode()
	if err != nil {
		return nil, err
	}
	_, tx, err := s.broadcast(ctx, "execute", payload.Contract, string(msg))
	return tx, err
}

// Migrate moves payload.Contract to payload.CodeID
func (s *session) Migrate(ctx context.Context, payload domain.MigratePayload) (*domain.TxResult, error) {
	msg, err := payload.Encode()
	if err != nil {
		return nil, err
	}
	_, tx, err := s.broadcast(ctx, "migrate", payload.Contract, strconv.FormatUint(payload.CodeID, 10), string(msg))
	return tx, err
}

// broadcast signs and submits `tx wasm <args>`, then waits for the commit.
// A transaction committed with a failure code is returned together with the error.
func (s *session) broadcast(ctx context.Context, args ...string) (*txQueryResult, *domain.TxResult, error) {
	out, err := s.runner.Run(ctx, nil, s.info.Profile.Daemon, s.txArgs(args...)...)
	if err != nil {
		return nil, nil, err
	}

	var resp txResponse
	if err := json.Unmarshal(out, &resp); err != nil {
		return nil, nil, fmt.Errorf("failed to parse broadcast output: %w", err)
	}
	if resp.Code != 0 {
		return nil, nil, fmt.Errorf("broadcast rejected with code %d (%s): %s", resp.Code, resp.Codespace, resp.RawLog)
	}
	if resp.TxHash == "" {
		return nil, nil, errors.New("broadcast returned no transaction hash")
	}

	start := time.Now()
	s.log.Debug("waiting for transaction", "tx", resp.TxHash)

	res, err := s.rpc.WaitForTx(ctx, resp.TxHash)
	if res == nil {
		return nil, nil, err
	}

	tx := &domain.TxResult{
		TxHash:  resp.TxHash,
		Height:  parseInt64(res.Height),
		GasUsed: parseInt64(res.TxResult.GasUsed),
	}
	if err != nil {
		return res, tx, err
	}
	s.log.Debug("transaction committed", "tx", tx.TxHash, "height", tx.Height, "gasUsed", tx.GasUsed, "duration", time.Since(start))
	return res, tx, nil
}

// txArgs builds the full `tx wasm` command line for this session
func (s *session) txArgs(args ...string) []string {
	p := s.info.Profile
	full := append([]string{"tx", "wasm"}, args...)
	return append(full,
		"--from", keyName,
		"--chain-id", p.ChainID,
		"--node", p.RPCURL,
		"--keyring-backend", keyringBackend,
		"--home", s.home,
		"--gas", "auto",
		"--gas-adjustment", gasAdjustment,
		"--gas-prices", s.info.Gas.String(),
		"--broadcast-mode", "sync",
		"--output", "json",
		"-y",
	)
}

// Close releases the RPC connection and deletes the temporary keyring
func (s *session) Close() error {
	if s.rpc != nil {
		s.rpc.Close()
		s.rpc = nil
	}
	if s.home == "" {
		return nil
	}
	err := os.RemoveAll(s.home)
	s.home = ""
	return err
}

var (
	_ usecase.SessionFactory = (*SessionFactory)(nil)
	_ usecase.SigningSession = (*session)(nil)
)
