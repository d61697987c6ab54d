package slots

import (
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/osse101/OwoSlots_Go/internal/domain"
)

var printer = message.NewPrinter(language.English)

// FormatAmount renders a cowoncy amount with digit grouping
func FormatAmount(n int64) string {
	return printer.Sprintf("%d", n)
}

// FormatSpinMessage returns the result line shown once all reels are revealed
func FormatSpinMessage(o domain.SpinOutcome) string {
	if !o.IsWin() {
		return MsgLoss
	}
	return FormatWinMessage(o.Prize, o.Rule.Name)
}

// FormatWinMessage formats a win from its prize and rule name, or the loss line when ruleName is empty
func FormatWinMessage(prize int64, ruleName string) string {
	if ruleName == "" || prize <= 0 {
		return MsgLoss
	}
	return fmt.Sprintf(MsgWinFormat, FormatAmount(prize), ruleName)
}

// FormatBatchMessage returns the quick simulation summary
func FormatBatchMessage(s domain.BatchSummary) string {
	return fmt.Sprintf(MsgBatchFormat,
		FormatAmount(int64(s.SpinsRun)),
		FormatAmount(s.NetChange),
		FormatRatio(s.NetChange, s.StartBalance),
		FormatAmount(s.FinalBalance),
	)
}

// FormatRatio renders net change as a signed percentage of the starting balance
func FormatRatio(net, start int64) string {
	if start <= 0 {
		if net == 0 {
			return MsgRatioZero
		}
		return MsgRatioNotAvail
	}
	ratio := decimal.NewFromInt(net).Div(decimal.NewFromInt(start)).Mul(decimal.NewFromInt(100))
	sign := "+"
	if net < 0 {
		sign = "-"
	}
	return fmt.Sprintf("(%s%s%%)", sign, ratio.Abs().StringFixed(2))
}

// FormatAdjustMessage confirms a relative balance adjustment
func FormatAdjustMessage(delta, balance int64) string {
	return fmt.Sprintf(MsgBalanceAdjustedFormat, FormatAmount(delta), FormatAmount(balance))
}

// FormatSetMessage confirms a balance overwrite
func FormatSetMessage(balance int64) string {
	return fmt.Sprintf(MsgBalanceSetFormat, FormatAmount(balance))
}

// FormatClampMessage explains why a wager was moved into [min,max]
func FormatClampMessage(requested, minWager, maxWager int64) string {
	if requested > maxWager {
		return fmt.Sprintf(MsgWagerAboveMaxFormat, FormatAmount(maxWager))
	}
	return fmt.Sprintf(MsgWagerBelowMinFormat, FormatAmount(minWager))
}
