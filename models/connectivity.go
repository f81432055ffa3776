// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ConnectivityState is the network reachability reported by the environment.
type ConnectivityState int

const (
	Online ConnectivityState = iota
	Offline
)

func (s ConnectivityState) String() string {
	if s == Offline {
		return "offline"
	}
	return "online"
}

// EffectiveNetworkType approximates connection quality from round-trip time,
// using the same buckets browsers expose.
type EffectiveNetworkType string

const (
	NetworkSlow2G EffectiveNetworkType = "slow-2g"
	Network2G     EffectiveNetworkType = "2g"
	Network3G     EffectiveNetworkType = "3g"
	Network4G     EffectiveNetworkType = "4g"
)

// Slow reports whether the connection is too slow for comfortable use.
func (t EffectiveNetworkType) Slow() bool {
	return t == NetworkSlow2G || t == Network2G
}
