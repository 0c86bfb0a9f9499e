package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zlobste/subnetcalc/subnet"
)

// subnetList is the enumeration output shape shared by all formats.
type subnetList struct {
	Subnets []string `json:"subnets" yaml:"subnets"`
	Total   string   `json:"total" yaml:"total"`
}

func (l subnetList) String() string {
	return fmt.Sprintf("%s\ntotal: %s", strings.Join(l.Subnets, "\n"), l.Total)
}

var infoCmd = &cobra.Command{
	Use:   "info <address[/prefix]>",
	Short: "Show subnet properties for an address or network",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger.Debug("evaluating input", "input", args[0])
		info, err := subnet.Evaluate(args[0])
		if err != nil {
			return err
		}
		return render(info)
	},
}

var containsCmd = &cobra.Command{
	Use:   "contains <network[/prefix]> <address>",
	Short: "Test whether an address lies inside a network",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		info, err := subnet.Evaluate(args[0])
		if err != nil {
			return err
		}
		ok, err := subnet.Contains(args[1], info.Prefix())
		if err != nil {
			return err
		}
		logger.Debug("containment check", "network", info.Prefix().String(), "candidate", args[1], "result", ok)
		return render(ok)
	},
}

var subnetsCmd = &cobra.Command{
	Use:   "subnets <network/prefix>",
	Short: "Enumerate child networks at a narrower prefix",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		newPrefix, _ := cmd.Flags().GetInt("new-prefix")
		maxResults, _ := cmd.Flags().GetInt("max")
		info, err := subnet.Evaluate(args[0])
		if err != nil {
			return err
		}
		children, total, err := subnet.Enumerate(info.Prefix(), newPrefix, maxResults)
		if err != nil {
			return err
		}
		list := subnetList{Subnets: make([]string, len(children)), Total: total.String()}
		for i, c := range children {
			list.Subnets[i] = c.String()
		}
		return render(list)
	},
}

var supernetCmd = &cobra.Command{
	Use:   "supernet <network/prefix>",
	Short: "Show the covering network at a wider prefix",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		newPrefix, _ := cmd.Flags().GetInt("new-prefix")
		info, err := subnet.Evaluate(args[0])
		if err != nil {
			return err
		}
		wider, err := subnet.Supernet(info.Prefix(), newPrefix)
		if err != nil {
			return err
		}
		return render(wider.String())
	},
}

var expandCmd = &cobra.Command{
	Use:   "expand <IPv6 address>",
	Short: "Expand a compressed IPv6 address",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		addr, err := subnet.ParseIPv6(args[0])
		if err != nil {
			return err
		}
		return render(addr.Expanded())
	},
}

var compressCmd = &cobra.Command{
	Use:   "compress <expanded IPv6>",
	Short: "Compress an expanded IPv6 address",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		addr, err := subnet.ParseIPv6(args[0])
		if err != nil {
			return err
		}
		return render(addr.String())
	},
}

var reverseCmd = &cobra.Command{
	Use:   "reverse <address>",
	Short: "Produce the reverse DNS name (in-addr.arpa / ip6.arpa)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		addr, err := subnet.ParseAddress(args[0])
		if err != nil {
			return err
		}
		return render(addr.ReverseDNS())
	},
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Displays the current version of subnetcalc",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Println("subnetcalc version v0.1.0")
		},
	}
}

func init() {
	subnetsCmd.Flags().Int("new-prefix", 0, "new prefix length to split into (must be larger than original)")
	subnetsCmd.Flags().Int("max", subnet.DefaultMaxResults, "maximum number of subnets to list")
	supernetCmd.Flags().Int("new-prefix", 0, "new prefix length to widen to (must be smaller than original)")
}
