package main

import (
	"crypto/rand"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"xdao.co/netid/convert"
	"xdao.co/netid/idgen"
	"xdao.co/netid/keys"
	"xdao.co/netid/netconfig"
	"xdao.co/netid/network"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, out io.Writer, errOut io.Writer) int {
	if len(args) == 0 {
		printUsage(errOut)
		return 2
	}

	switch args[0] {
	case "networks":
		return cmdNetworks(args[1:], out, errOut)
	case "address":
		return cmdAddress(args[1:], out, errOut)
	case "mosaic-id":
		return cmdMosaicID(args[1:], out, errOut)
	case "key":
		return cmdKey(args[1:], out, errOut)
	case "hex":
		return cmdHex(args[1:], out, errOut)
	case "help", "-h", "--help":
		printUsage(out)
		return 0
	default:
		fmt.Fprintf(errOut, "unknown command: %s\n\n", args[0])
		printUsage(errOut)
		return 2
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "xdao-netid: network identity codec CLI")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  xdao-netid networks [--config <file>]")
	fmt.Fprintln(w, "  xdao-netid address [--network <name>] (--public-key <64hex> | --private-key <64hex>) [--config <file>]")
	fmt.Fprintln(w, "  xdao-netid mosaic-id [--network <name>] --public-key <64hex> --nonce <uint32> [--config <file>]")
	fmt.Fprintln(w, "  xdao-netid key generate")
	fmt.Fprintln(w, "  xdao-netid key sign --private-key <64hex> --data <hex>")
	fmt.Fprintln(w, "  xdao-netid key verify --public-key <64hex> --data <hex> --signature <128hex>")
	fmt.Fprintln(w, "  xdao-netid hex encode <text>")
	fmt.Fprintln(w, "  xdao-netid hex decode <hex>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Notes:")
	fmt.Fprintln(w, "  - --config defaults to $"+netconfig.EnvConfigPath+"; without it only built-in networks are known")
	fmt.Fprintln(w, "  - --network defaults to the config's default network, else mainnet")
	fmt.Fprintln(w, "  - addresses are printed as raw uppercase hex (identifier || hash || checksum)")
}

func configFlag(fs *flag.FlagSet) *string {
	return fs.String("config", os.Getenv(netconfig.EnvConfigPath), "JSON file listing additional networks")
}

func loadCatalog(path string) (*netconfig.Catalog, error) {
	if path == "" {
		return netconfig.Builtin(), nil
	}
	cfg, err := netconfig.LoadFile(path)
	if err != nil {
		return nil, err
	}
	return cfg.Catalog()
}

func selectNetwork(configPath, name string) (network.SymbolNetwork, error) {
	cat, err := loadCatalog(configPath)
	if err != nil {
		return network.SymbolNetwork{}, err
	}
	if name == "" {
		return cat.Default()
	}
	return cat.ByName(name)
}

func cmdNetworks(args []string, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("networks", flag.ContinueOnError)
	fs.SetOutput(errOut)
	configPath := configFlag(fs)
	if err := fs.Parse(args); err != nil {
		return 2
	}
	cat, err := loadCatalog(*configPath)
	if err != nil {
		fmt.Fprintf(errOut, "config: %v\n", err)
		return 1
	}
	for _, n := range cat.List() {
		d := network.Describe(n)
		cid, err := d.CID()
		if err != nil {
			fmt.Fprintf(errOut, "cid %s: %v\n", n.Name(), err)
			return 1
		}
		fmt.Fprintf(out, "%s\t0x%02X\t%s\t%s\t%s\n", d.Name, d.Identifier, d.Hasher, d.GenerationHash, cid)
	}
	return 0
}

func cmdAddress(args []string, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("address", flag.ContinueOnError)
	fs.SetOutput(errOut)
	configPath := configFlag(fs)
	var name, publicKeyHex, privateKeyHex string
	fs.StringVar(&name, "network", "", "Network name")
	fs.StringVar(&publicKeyHex, "public-key", "", "Public key as 64 hex chars")
	fs.StringVar(&privateKeyHex, "private-key", "", "Private key as 64 hex chars")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if (publicKeyHex == "") == (privateKeyHex == "") {
		fmt.Fprintln(errOut, "exactly one of --public-key or --private-key is required")
		return 2
	}

	n, err := selectNetwork(*configPath, name)
	if err != nil {
		fmt.Fprintf(errOut, "network: %v\n", err)
		return 1
	}

	var pub []byte
	if privateKeyHex != "" {
		kp, err := keys.NewKeyPairFromHex(privateKeyHex)
		if err != nil {
			fmt.Fprintf(errOut, "invalid --private-key: %v\n", err)
			return 2
		}
		pub = kp.PublicKey()
	} else {
		if pub, err = decodePublicKey(publicKeyHex); err != nil {
			fmt.Fprintf(errOut, "invalid --public-key: %v\n", err)
			return 2
		}
	}

	raw, err := network.RawAddress(n, pub)
	if err != nil {
		fmt.Fprintf(errOut, "address: %v\n", err)
		return 1
	}
	fmt.Fprintln(out, convert.BytesToHex(raw))
	return 0
}

func cmdMosaicID(args []string, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("mosaic-id", flag.ContinueOnError)
	fs.SetOutput(errOut)
	configPath := configFlag(fs)
	var name, publicKeyHex, nonceText string
	fs.StringVar(&name, "network", "", "Network name")
	fs.StringVar(&publicKeyHex, "public-key", "", "Owner public key as 64 hex chars")
	fs.StringVar(&nonceText, "nonce", "", "Mosaic nonce (uint32, decimal or 0x-prefixed)")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if publicKeyHex == "" || nonceText == "" {
		fmt.Fprintln(errOut, "missing --public-key or --nonce")
		return 2
	}
	nonce, err := strconv.ParseUint(nonceText, 0, 32)
	if err != nil {
		fmt.Fprintf(errOut, "invalid --nonce: %v\n", err)
		return 2
	}
	pub, err := decodePublicKey(publicKeyHex)
	if err != nil {
		fmt.Fprintf(errOut, "invalid --public-key: %v\n", err)
		return 2
	}
	n, err := selectNetwork(*configPath, name)
	if err != nil {
		fmt.Fprintf(errOut, "network: %v\n", err)
		return 1
	}
	raw, err := network.RawAddress(n, pub)
	if err != nil {
		fmt.Fprintf(errOut, "address: %v\n", err)
		return 1
	}
	id, err := idgen.MosaicID(n, raw, uint32(nonce))
	if err != nil {
		fmt.Fprintf(errOut, "mosaic id: %v\n", err)
		return 1
	}
	fmt.Fprintln(out, idgen.MosaicIDHex(id))
	return 0
}

func decodePublicKey(s string) ([]byte, error) {
	if err := convert.ValidateHexString(s, 2*network.PublicKeySize, "public key"); err != nil {
		return nil, err
	}
	return convert.HexToBytes(s)
}

func cmdKey(args []string, out io.Writer, errOut io.Writer) int {
	if len(args) == 0 {
		printKeyUsage(errOut)
		return 2
	}
	switch args[0] {
	case "generate":
		kp, err := keys.GenerateKeyPair(rand.Reader)
		if err != nil {
			fmt.Fprintf(errOut, "rand: %v\n", err)
			return 1
		}
		fmt.Fprintf(out, "private-key: %s\n", kp.PrivateKeyHex())
		fmt.Fprintf(out, "public-key: %s\n", kp.PublicKeyHex())
		return 0
	case "sign":
		return cmdKeySign(args[1:], out, errOut)
	case "verify":
		return cmdKeyVerify(args[1:], out, errOut)
	case "help", "-h", "--help":
		printKeyUsage(out)
		return 0
	default:
		fmt.Fprintf(errOut, "unknown key subcommand: %s\n\n", args[0])
		printKeyUsage(errOut)
		return 2
	}
}

func printKeyUsage(w io.Writer) {
	fmt.Fprintln(w, "xdao-netid key: ed25519 key pairs")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  xdao-netid key generate")
	fmt.Fprintln(w, "  xdao-netid key sign --private-key <64hex> --data <hex>")
	fmt.Fprintln(w, "  xdao-netid key verify --public-key <64hex> --data <hex> --signature <128hex>")
}

func cmdKeySign(args []string, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("key sign", flag.ContinueOnError)
	fs.SetOutput(errOut)
	var privateKeyHex, dataHex string
	fs.StringVar(&privateKeyHex, "private-key", "", "Private key as 64 hex chars")
	fs.StringVar(&dataHex, "data", "", "Payload as hex")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	kp, err := keys.NewKeyPairFromHex(privateKeyHex)
	if err != nil {
		fmt.Fprintf(errOut, "invalid --private-key: %v\n", err)
		return 2
	}
	payload, err := convert.HexToBytes(dataHex)
	if err != nil {
		fmt.Fprintf(errOut, "invalid --data: %v\n", err)
		return 2
	}
	fmt.Fprintln(out, kp.SignHex(payload))
	return 0
}

func cmdKeyVerify(args []string, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("key verify", flag.ContinueOnError)
	fs.SetOutput(errOut)
	var publicKeyHex, dataHex, signatureHex string
	fs.StringVar(&publicKeyHex, "public-key", "", "Public key as 64 hex chars")
	fs.StringVar(&dataHex, "data", "", "Payload as hex")
	fs.StringVar(&signatureHex, "signature", "", "Signature as 128 hex chars")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	payload, err := convert.HexToBytes(dataHex)
	if err != nil {
		fmt.Fprintf(errOut, "invalid --data: %v\n", err)
		return 2
	}
	if err := keys.VerifyHex(publicKeyHex, payload, signatureHex); err != nil {
		fmt.Fprintf(errOut, "verify: %v\n", err)
		return 1
	}
	fmt.Fprintln(out, "OK")
	return 0
}

func cmdHex(args []string, out io.Writer, errOut io.Writer) int {
	if len(args) != 2 {
		fmt.Fprintln(errOut, "usage: xdao-netid hex (encode <text> | decode <hex>)")
		return 2
	}
	switch args[0] {
	case "encode":
		fmt.Fprintln(out, convert.UTF8TextToHex(args[1]))
		return 0
	case "decode":
		b, err := convert.HexToBytes(args[1])
		if err != nil {
			fmt.Fprintf(errOut, "invalid hex: %v\n", err)
			return 2
		}
		fmt.Fprintln(out, convert.BytesToUTF8Text(b))
		return 0
	default:
		fmt.Fprintf(errOut, "unknown hex subcommand: %s\n", args[0])
		return 2
	}
}
