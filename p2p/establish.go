//
// Copyright (c) 2026 UMN ECE Sartori Labs
//
// All rights reserved.
//

package p2p

import (
	"fmt"
	"log"
	"net"
	"strconv"
	"time"
)

// Connection retry limits. These are process-wide constants; there
// is no runtime reconfiguration.
const (
	maxConnectAttempts = 10
	connectRetryDelay  = 500 * time.Millisecond
)

// Endpoint defines the network address of one party.
type Endpoint struct {
	ID   int
	Host string
	Port int
}

// Addr returns the host:port address of the endpoint.
func (ep Endpoint) Addr() string {
	return net.JoinHostPort(ep.Host, strconv.Itoa(ep.Port))
}

func (ep Endpoint) String() string {
	return fmt.Sprintf("%d[%v]", ep.ID, ep.Addr())
}

// Establish opens the bidirectional channel between the two parties.
// Party 0 accepts on its own endpoint; party 1 dials party 0. Each
// failed attempt is retried after a fixed delay up to a fixed attempt
// cap, after which the last error is returned. On success the parties
// have exchanged and verified their ids.
func Establish(myID int, endpoints [2]Endpoint) (*Conn, error) {
	return establish(myID, endpoints, maxConnectAttempts, connectRetryDelay)
}

func establish(myID int, endpoints [2]Endpoint, attempts int,
	delay time.Duration) (*Conn, error) {

	var mine, peer *Endpoint
	for idx, ep := range endpoints {
		if ep.ID == myID {
			mine = &endpoints[idx]
		} else {
			peer = &endpoints[idx]
		}
	}
	if mine == nil || peer == nil {
		return nil, fmt.Errorf("party %d not found in endpoints %v",
			myID, endpoints)
	}

	var listener *net.TCPListener
	if myID == 0 {
		ln, err := net.Listen("tcp", mine.Addr())
		if err != nil {
			return nil, fmt.Errorf("party 0 listen on %v: %w",
				mine.Addr(), err)
		}
		listener = ln.(*net.TCPListener)
		defer listener.Close()
	}

	var nc net.Conn
	var err error

	for attempt := 1; ; attempt++ {
		log.Printf("Party %d: setting up connection (attempt %d/%d)...\n",
			myID, attempt, attempts)
		if myID == 0 {
			// The accept window doubles as the inter-attempt delay.
			listener.SetDeadline(time.Now().Add(delay))
			nc, err = listener.Accept()
		} else {
			nc, err = net.Dial("tcp", peer.Addr())
		}
		if err == nil {
			break
		}
		log.Printf("Party %d: connection attempt %d failed: %s\n",
			myID, attempt, err)
		if attempt >= attempts {
			return nil, fmt.Errorf(
				"connection setup failed after %d attempts: %w",
				attempts, err)
		}
		if myID != 0 {
			time.Sleep(delay)
		}
	}

	conn := NewConn(nc)
	if err := conn.SendUint32(myID); err != nil {
		conn.Close()
		return nil, err
	}
	if err := conn.Flush(); err != nil {
		conn.Close()
		return nil, err
	}
	peerID, err := conn.ReceiveUint32()
	if err != nil {
		conn.Close()
		return nil, err
	}
	if peerID != peer.ID {
		conn.Close()
		return nil, fmt.Errorf("peer identified as party %d, expected %d",
			peerID, peer.ID)
	}
	log.Printf("Party %d: connected to peer %v\n", myID, peer)

	return conn, nil
}
