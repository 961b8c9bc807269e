// Copyright 2017 DigitalOcean.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package actiontext

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"net"
	"regexp"
	"strconv"
	"strings"

	"github.com/ovswitchdp/actionengine/actions"
	"github.com/ovswitchdp/actionengine/internal/ovsh"
)

var (
	outputRe    = regexp.MustCompile(`^output\((\d+)\)$`)
	popVlanRe   = regexp.MustCompile(`^pop_vlan$`)
	pushVlanRe  = regexp.MustCompile(`^push_vlan\(tpid=(\S+),tci=(\S+)\)$`)
	pushMplsRe  = regexp.MustCompile(`^push_mpls\(lse=(\S+),ethertype=(\S+)\)$`)
	popMplsRe   = regexp.MustCompile(`^pop_mpls\(ethertype=(\S+)\)$`)
	recircRe    = regexp.MustCompile(`^recirc\((\d+)\)$`)
	hashRe      = regexp.MustCompile(`^hash\(basis=(\S+)\)$`)
	userspaceRe = regexp.MustCompile(`^userspace\((.*)\)$`)
	setRe       = regexp.MustCompile(`^set\((.*)\)$`)
	sampleRe    = regexp.MustCompile(`^sample\(probability=(\S+),actions=\((.*)\)\)$`)
)

// parseOne decodes one action's text representation into an actions.Action,
// per spec.md's action-tag table.
func parseOne(s string) (actions.Action, error) {
	if popVlanRe.MatchString(s) {
		return actions.Action{Tag: actions.TagPopVlan}, nil
	}

	if m := outputRe.FindStringSubmatch(s); m != nil {
		port, err := parseUint(m[1])
		if err != nil {
			return actions.Action{}, err
		}
		return actions.BuildOutput(uint32(port)), nil
	}

	if m := pushVlanRe.FindStringSubmatch(s); m != nil {
		tpid, err := parseUint(m[1])
		if err != nil {
			return actions.Action{}, err
		}
		tci, err := parseUint(m[2])
		if err != nil {
			return actions.Action{}, err
		}
		return actions.BuildPushVLAN(actions.PushVLANParams{TPID: uint16(tpid), TCI: uint16(tci)}), nil
	}

	if m := pushMplsRe.FindStringSubmatch(s); m != nil {
		lse, err := parseUint(m[1])
		if err != nil {
			return actions.Action{}, err
		}
		eth, err := parseUint(m[2])
		if err != nil {
			return actions.Action{}, err
		}
		return actions.BuildPushMPLS(actions.PushMPLSParams{LSE: uint32(lse), Ethertype: uint16(eth)}), nil
	}

	if m := popMplsRe.FindStringSubmatch(s); m != nil {
		eth, err := parseUint(m[1])
		if err != nil {
			return actions.Action{}, err
		}
		return actions.BuildPopMPLS(uint16(eth)), nil
	}

	if m := recircRe.FindStringSubmatch(s); m != nil {
		id, err := parseUint(m[1])
		if err != nil {
			return actions.Action{}, err
		}
		return actions.BuildRecirc(uint32(id)), nil
	}

	if m := hashRe.FindStringSubmatch(s); m != nil {
		basis, err := parseUint(m[1])
		if err != nil {
			return actions.Action{}, err
		}
		return actions.BuildHash(actions.HashParams{Basis: uint32(basis)}), nil
	}

	if m := userspaceRe.FindStringSubmatch(s); m != nil {
		return parseUserspace(m[1])
	}

	if m := setRe.FindStringSubmatch(s); m != nil {
		return parseSet(m[1])
	}

	if m := sampleRe.FindStringSubmatch(s); m != nil {
		prob, err := parseUint(m[1])
		if err != nil {
			return actions.Action{}, err
		}
		nested, err := Parse(m[2])
		if err != nil {
			return actions.Action{}, err
		}
		return actions.BuildSample(actions.SampleParams{Probability: uint32(prob), Actions: nested})
	}

	return actions.Action{}, fmt.Errorf("actiontext: unrecognized action %q", s)
}

// parseUserspace parses userspace's "pid=N[,userdata=H]" argument list.
func parseUserspace(args string) (actions.Action, error) {
	var p actions.UserspaceParams
	for _, kv := range splitArgs(args) {
		k, v, err := splitKV(kv)
		if err != nil {
			return actions.Action{}, err
		}
		switch k {
		case "pid":
			pid, err := parseUint(v)
			if err != nil {
				return actions.Action{}, err
			}
			p.PID = uint32(pid)
		case "userdata":
			b, err := hex.DecodeString(v)
			if err != nil {
				return actions.Action{}, fmt.Errorf("actiontext: userspace: userdata: %w", err)
			}
			p.Userdata = b
		default:
			return actions.Action{}, fmt.Errorf("actiontext: userspace: unknown argument %q", k)
		}
	}
	return actions.BuildUserspace(p)
}

// parseSet parses set's "field.subfield=value[, ...]" argument list into a
// single keyed SET action. Only one field is supported per SET, matching
// ovsh.KeyAttr*'s one-nested-attribute convention. The other fields of
// the keyed payload are sent as zero: tcp.src/udp.src also set the
// destination port to 0 and tcp.dst/udp.dst the source port.
func parseSet(args string) (actions.Action, error) {
	kvs := splitArgs(args)
	if len(kvs) != 1 {
		return actions.Action{}, fmt.Errorf("actiontext: set: expected exactly one field, got %d", len(kvs))
	}

	k, v, err := splitKV(kvs[0])
	if err != nil {
		return actions.Action{}, err
	}

	switch k {
	case "ipv4.src", "ipv4.dst":
		ip := net.ParseIP(v).To4()
		if ip == nil {
			return actions.Action{}, fmt.Errorf("actiontext: set: invalid ipv4 address %q", v)
		}
		return buildSetAddr12(ovsh.KeyAttrIpv4, k == "ipv4.src", ip, ip)

	case "tcp.src":
		return buildSetPorts(ovsh.KeyAttrTcp, v, "0")
	case "tcp.dst":
		return buildSetPorts(ovsh.KeyAttrTcp, "0", v)
	case "udp.src":
		return buildSetPorts(ovsh.KeyAttrUdp, v, "0")
	case "udp.dst":
		return buildSetPorts(ovsh.KeyAttrUdp, "0", v)

	case "priority":
		n, err := parseUint(v)
		if err != nil {
			return actions.Action{}, err
		}
		b := make([]byte, 4)
		binary.LittleEndian.PutUint32(b, uint32(n))
		return actions.BuildSet(ovsh.KeyAttrPriority, b)

	case "skb_mark":
		n, err := parseUint(v)
		if err != nil {
			return actions.Action{}, err
		}
		b := make([]byte, 4)
		binary.LittleEndian.PutUint32(b, uint32(n))
		return actions.BuildSet(ovsh.KeyAttrSkbMark, b)

	default:
		return actions.Action{}, fmt.Errorf("actiontext: set: unsupported field %q", k)
	}
}

// buildSetAddr12 builds the 12-byte ovs_key_ipv4-style SET payload this
// repo's engine.doSet expects: 4 bytes src, 4 bytes dst, then the
// remaining bytes (including tos/ttl) left zero. srcWanted selects which
// of src/dst the caller actually supplied; the other address stays zero.
// doSet applies every field of the payload, so executing the action also
// sets the other address, the TOS and the TTL to zero.
func buildSetAddr12(tag actions.Tag, srcWanted bool, src, dst net.IP) (actions.Action, error) {
	b := make([]byte, 12)
	if srcWanted {
		copy(b[0:4], src.To4())
	} else {
		copy(b[4:8], dst.To4())
	}
	return actions.BuildSet(tag, b)
}

func buildSetPorts(tag actions.Tag, src, dst string) (actions.Action, error) {
	s, err := parseUint(src)
	if err != nil {
		return actions.Action{}, err
	}
	d, err := parseUint(dst)
	if err != nil {
		return actions.Action{}, err
	}
	b := make([]byte, 4)
	binary.BigEndian.PutUint16(b[0:2], uint16(s))
	binary.BigEndian.PutUint16(b[2:4], uint16(d))
	return actions.BuildSet(tag, b)
}

// splitArgs splits a comma-separated "k=v" argument list, trimming
// whitespace around each element.
func splitArgs(s string) []string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}

func splitKV(s string) (string, string, error) {
	i := strings.IndexByte(s, '=')
	if i < 0 {
		return "", "", fmt.Errorf("actiontext: malformed argument %q", s)
	}
	return s[:i], s[i+1:], nil
}

// parseUint parses a decimal or 0x-prefixed hexadecimal unsigned integer,
// matching the DSL's H (hex) and N (decimal) argument conventions.
func parseUint(s string) (uint64, error) {
	s = strings.TrimSpace(s)
	base := 10
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		s = s[2:]
		base = 16
	}
	return strconv.ParseUint(s, base, 64)
}
