package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// UnlockSeconds is how long walletpassphrase keeps the wallet unlocked.
const UnlockSeconds = 60

// WalletUnlocker unlocks an encrypted node wallet on request.
type WalletUnlocker struct {
	wallet Wallet
	logger *zap.Logger
}

// NewWalletUnlocker constructs a WalletUnlocker.
func NewWalletUnlocker(wallet Wallet, logger *zap.Logger) *WalletUnlocker {
	return &WalletUnlocker{wallet: wallet, logger: logger}
}

// Locked reports whether the wallet is encrypted and currently locked. Unencrypted
// wallets report no unlocked_until and are never locked.
func (w *WalletUnlocker) Locked(ctx context.Context) (bool, error) {
	info, err := w.wallet.GetInfo(ctx)
	if err != nil {
		return false, fmt.Errorf("get info: %w", err)
	}
	return info.UnlockedUntil != nil && *info.UnlockedUntil == 0, nil
}

// Unlock unlocks the wallet with passphrase when it is locked and reports whether it did.
func (w *WalletUnlocker) Unlock(ctx context.Context, passphrase string) (bool, error) {
	locked, err := w.Locked(ctx)
	if err != nil || !locked {
		return false, err
	}
	if err := w.wallet.WalletPassphrase(ctx, passphrase, UnlockSeconds); err != nil {
		return false, fmt.Errorf("unlock wallet: %w", err)
	}
	w.logger.Info("wallet unlocked", zap.Int("seconds", UnlockSeconds))
	return true, nil
}
