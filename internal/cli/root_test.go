package cli

import (
	"bytes"
	"strings"
	"testing"
)

func TestInfoIPv4(t *testing.T) {
	buf := &bytes.Buffer{}
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"info", "192.168.1.0/24"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"Broadcast: 192.168.1.255", "Netmask:   255.255.255.0", "Class:     C"} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in output:\n%s", want, out)
		}
	}
}

func TestInfoIPv6(t *testing.T) {
	buf := &bytes.Buffer{}
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"info", "2001:db8::/64"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, "2001:0db8::/64") {
		t.Fatalf("expected prefix notation in output:\n%s", out)
	}
	if !strings.Contains(out, "2^64") {
		t.Fatalf("expected exponent-form count in output:\n%s", out)
	}
}

func TestInfoJSON(t *testing.T) {
	defer func() { format = outHuman }()

	buf := &bytes.Buffer{}
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"info", "10.0.0.0/8", "-o", "json"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, `"class": "A"`) {
		t.Fatalf("expected json class field in output:\n%s", out)
	}
	if !strings.Contains(out, `"usable_hosts": "16777214"`) {
		t.Fatalf("expected usable host count in output:\n%s", out)
	}
}

func TestInfoInvalidInput(t *testing.T) {
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"info", "300.1.2.3"})
	if err := rootCmd.Execute(); err == nil {
		t.Fatal("expected error for invalid octet")
	}
}

func TestContainsCommand(t *testing.T) {
	buf := &bytes.Buffer{}
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"contains", "192.168.1.0/24", "192.168.1.200"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "true") {
		t.Fatalf("expected true, got %s", buf.String())
	}

	buf.Reset()
	rootCmd.SetArgs([]string{"contains", "192.168.2.0/24", "192.168.1.200"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "false") {
		t.Fatalf("expected false, got %s", buf.String())
	}
}

func TestSubnetsCommand(t *testing.T) {
	buf := &bytes.Buffer{}
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"subnets", "192.168.1.0/24", "--new-prefix", "26"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"192.168.1.0/26", "192.168.1.64/26", "192.168.1.128/26", "192.168.1.192/26", "total: 4"} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in output:\n%s", want, out)
		}
	}
}

func TestSubnetsNotEnumerable(t *testing.T) {
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"subnets", "192.168.1.0/24", "--new-prefix", "24"})
	if err := rootCmd.Execute(); err == nil {
		t.Fatal("expected not enumerable error")
	}
}

func TestSupernetCommand(t *testing.T) {
	buf := &bytes.Buffer{}
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"supernet", "192.168.1.128/25", "--new-prefix", "24"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "192.168.1.0/24") {
		t.Fatalf("supernet output mismatch: %s", buf.String())
	}
}

func TestExpandCommand(t *testing.T) {
	buf := &bytes.Buffer{}
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"expand", "2001:db8::1"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "2001:0db8:0000:0000:0000:0000:0000:0001") {
		t.Fatalf("expand output mismatch: %s", buf.String())
	}
}

func TestCompressCommand(t *testing.T) {
	buf := &bytes.Buffer{}
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"compress", "2001:0db8:0000:0000:0000:0000:0000:0001"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "2001:db8::1") {
		t.Fatalf("compress output mismatch: %s", buf.String())
	}
}

func TestReverseCommand(t *testing.T) {
	buf := &bytes.Buffer{}
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"reverse", "192.168.1.1"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "1.1.168.192.in-addr.arpa.") {
		t.Fatalf("reverse output mismatch: %s", buf.String())
	}

	buf.Reset()
	rootCmd.SetArgs([]string{"reverse", "2001:db8::1"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "ip6.arpa") {
		t.Fatalf("reverse output mismatch: %s", buf.String())
	}
}
