// End-to-end exercise client: creates three accounts, runs concurrent
// escrowed transfers with confirmations, and prints the resulting balances
// and state hash.
package main

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	grpcpool "github.com/escrowd/go-escrow-ledger/pkg/grpc"
	pb "github.com/escrowd/go-escrow-ledger/proto"
)

const (
	Target        = "localhost:50051"
	TransferCount = 100
	Concurrency   = 10
	Amount        = 3
)

func main() {
	log := logrus.New()

	pool := grpcpool.NewPool()
	defer pool.Close()

	conn, err := pool.GetConnection(Target)
	if err != nil {
		log.Fatalf("did not connect: %v", err)
	}
	c := pb.NewLedgerServiceClient(conn)

	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Second)
	defer cancel()

	alice := newKey()
	bob := newKey()
	carol := newKey()

	for name, key := range map[string]string{"alice": alice, "bob": bob, "carol": carol} {
		resp, err := c.SubmitTransaction(ctx, &pb.SubmitRequest{
			Author:  key,
			Payload: &pb.SubmitRequest_CreateAccount{CreateAccount: &pb.CreateAccount{Name: name}},
		})
		if err != nil {
			log.Fatalf("create %s: %v", name, err)
		}
		if !resp.Success {
			log.Fatalf("create %s rejected: %s", name, resp.Message)
		}
	}

	// Fund alice beyond the initial balance so every transfer can reserve.
	issue, err := c.SubmitTransaction(ctx, &pb.SubmitRequest{
		Author:  alice,
		Payload: &pb.SubmitRequest_Issue{Issue: &pb.Issue{Amount: TransferCount * Amount, Seed: uint64(time.Now().UnixNano())}},
	})
	if err != nil || !issue.Success {
		log.Fatalf("issue failed: %v %v", err, issue.GetMessage())
	}

	var wg sync.WaitGroup
	wg.Add(TransferCount)
	sem := make(chan struct{}, Concurrency)
	start := time.Now()

	for i := 0; i < TransferCount; i++ {
		sem <- struct{}{}
		go func(seed uint64) {
			defer wg.Done()
			defer func() { <-sem }()

			ref := uuid.New().String()
			transfer, err := c.SubmitTransaction(ctx, &pb.SubmitRequest{
				Author: alice,
				Payload: &pb.SubmitRequest_Transfer{Transfer: &pb.Transfer{
					To:       bob,
					Approver: carol,
					Amount:   Amount,
					Seed:     seed,
				}},
			})
			if err != nil {
				log.WithField("ref", ref).Errorf("transfer rpc: %v", err)
				return
			}
			if !transfer.Success {
				log.WithField("ref", ref).Warnf("transfer rejected: %s", transfer.Message)
				return
			}

			confirm, err := c.SubmitTransaction(ctx, &pb.SubmitRequest{
				Author: carol,
				Payload: &pb.SubmitRequest_ConfirmTransfer{ConfirmTransfer: &pb.ConfirmTransfer{
					TxHash: transfer.TxHash,
					Seed:   seed,
				}},
			})
			if err != nil {
				log.WithField("ref", ref).Errorf("confirm rpc: %v", err)
				return
			}
			if !confirm.Success {
				log.WithField("ref", ref).Warnf("confirm rejected: %s", confirm.Message)
			}
		}(uint64(i))
	}
	wg.Wait()

	elapsed := time.Since(start)
	fmt.Printf("Completed %d transfer+confirm pairs in %v\n", TransferCount, elapsed)

	for name, key := range map[string]string{"alice": alice, "bob": bob, "carol": carol} {
		acct, err := c.GetAccount(ctx, &pb.GetAccountRequest{PubKey: key})
		if err != nil {
			log.Fatalf("get %s: %v", name, err)
		}
		fmt.Printf("%s: balance=%d frozen=%d history=%d\n",
			name, acct.Account.Balance, acct.Account.FrozenAmount, acct.Account.HistoryLen)
	}

	state, err := c.GetStateHash(ctx, &pb.GetStateHashRequest{})
	if err != nil {
		log.Fatalf("get state hash: %v", err)
	}
	fmt.Printf("state hash: %s\n", state.StateHash)
}

// newKey fabricates a random identity. In a real deployment the transport
// layer derives this from the verified signer key.
func newKey() string {
	var key [32]byte
	if _, err := rand.Read(key[:]); err != nil {
		panic(err)
	}
	return hex.EncodeToString(key[:])
}
