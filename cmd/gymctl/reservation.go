package main

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"gym-reservation-engine/internal/usecase/commands"

	"github.com/spf13/cobra"
)

const wallClockLayout = "2006-01-02 15:04"

var (
	quoteCourtID  int64
	quoteMemberID int64
	quoteStart    string
	quoteEnd      string
	cancelReason  string
)

var quoteCmd = &cobra.Command{
	Use:   "quote",
	Short: "Price a slot without booking it",
	Example: `  gymctl quote --court 1 --member 7 --start "2026-10-20 14:00" --end "2026-10-20 16:00"`,
	Args: cobra.NoArgs,
	RunE: runQuote,
}

var cancelCmd = &cobra.Command{
	Use:   "cancel RESERVATION_ID",
	Short: "Cancel a reservation and refund its court order",
	Args:  cobra.ExactArgs(1),
	RunE:  runCancel,
}

func init() {
	rootCmd.AddCommand(quoteCmd, cancelCmd)

	quoteCmd.Flags().Int64Var(&quoteCourtID, "court", 0, "Court ID")
	quoteCmd.Flags().Int64Var(&quoteMemberID, "member", 0, "Member ID, omit for a walk-in price")
	quoteCmd.Flags().StringVar(&quoteStart, "start", "", "Slot start, RFC3339 or \""+wallClockLayout+"\" in ENGINE_TIMEZONE")
	quoteCmd.Flags().StringVar(&quoteEnd, "end", "", "Slot end, same format as --start")
	_ = quoteCmd.MarkFlagRequired("court")
	_ = quoteCmd.MarkFlagRequired("start")
	_ = quoteCmd.MarkFlagRequired("end")

	cancelCmd.Flags().StringVar(&cancelReason, "reason", "", "Reason recorded on the refund")
}

// parseSlotTime accepts RFC3339 or a wall-clock time in the gym's zone.
func parseSlotTime(value string, loc *time.Location) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	t, err := time.ParseInLocation(wallClockLayout, value, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time %q: want RFC3339 or %q", value, wallClockLayout)
	}
	return t, nil
}

func runQuote(cmd *cobra.Command, _ []string) error {
	ctx, cancel := commandContext(cmd)
	defer cancel()

	return withEngine(ctx, func(ctx context.Context, e engine) error {
		start, err := parseSlotTime(quoteStart, e.Location)
		if err != nil {
			return err
		}
		end, err := parseSlotTime(quoteEnd, e.Location)
		if err != nil {
			return err
		}

		in := commands.QuoteInput{CourtID: quoteCourtID, Start: start, End: end}
		if cmd.Flags().Changed("member") {
			in.MemberID = &quoteMemberID
		}

		res, err := e.Reservations.Quote(ctx, in)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "court:    %d %s\n", res.CourtID, res.CourtName)
		fmt.Fprintf(out, "slot:     %s - %s\n", res.Start.In(e.Location).Format(wallClockLayout), res.End.In(e.Location).Format(wallClockLayout))
		fmt.Fprintf(out, "base:     %s\n", res.Quote.BaseAmount.StringFixed(2))
		fmt.Fprintf(out, "discount: %s (%s, pays %s%%)\n", res.Quote.DiscountAmount.StringFixed(2), res.Quote.Discount.Source, res.Quote.Discount.Percent.String())
		fmt.Fprintf(out, "payable:  %s\n", res.Quote.Amount.StringFixed(2))
		return nil
	})
}

func runCancel(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || id <= 0 {
		return fmt.Errorf("invalid reservation id %q", args[0])
	}

	ctx, cancel := commandContext(cmd)
	defer cancel()

	return withEngine(ctx, func(ctx context.Context, e engine) error {
		res, err := e.Reservations.Cancel(ctx, commands.CancelReservationInput{
			ReservationID: id,
			Reason:        cancelReason,
		})
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "cancelled reservation %d\n", res.ReservationID)
		fmt.Fprintf(out, "refund order %s: %s\n", res.RefundOrderNo, res.RefundAmount.StringFixed(2))
		if res.BalanceAfter != nil {
			fmt.Fprintf(out, "member balance: %s\n", res.BalanceAfter.StringFixed(2))
		}
		return nil
	})
}
