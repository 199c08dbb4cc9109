// Package grpc is the driving adapter: it turns submit requests into
// verified envelopes (author identity plus derived transaction id) and maps
// execution errors back to their stable codes.
package grpc

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/escrowd/go-escrow-ledger/internal/app/core/domain"
	"github.com/escrowd/go-escrow-ledger/internal/app/core/usecase"
	pb "github.com/escrowd/go-escrow-ledger/proto"
)

var errMissingPayload = errors.New("request carries no payload")

type GrpcServer struct {
	pb.UnimplementedLedgerServiceServer
	core *usecase.CoreUseCase
	log  *logrus.Logger
}

func NewGrpcServer(core *usecase.CoreUseCase, log *logrus.Logger) *GrpcServer {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &GrpcServer{core: core, log: log}
}

func (s *GrpcServer) SubmitTransaction(ctx context.Context, req *pb.SubmitRequest) (*pb.SubmitResponse, error) {
	author, err := domain.ParsePublicKey(req.Author)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "invalid author: "+err.Error())
	}

	payload, err := payloadFromRequest(req)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	env := domain.NewEnvelope(author, payload)
	requestID := uuid.New().String()
	logger := s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"tx":         env.TxID.String(),
		"type":       uint8(payload.Type()),
	})

	if err := s.core.Submit(ctx, env); err != nil {
		var execErr *domain.ExecutionError
		if errors.As(err, &execErr) {
			// Soft failure: the transition aborted cleanly, report the code.
			logger.WithField("code", uint8(execErr.Code)).Info("transaction rejected")
			return &pb.SubmitResponse{
				Success:   false,
				ErrorCode: uint32(execErr.Code),
				Message:   execErr.Description,
				TxHash:    env.TxID.String(),
			}, nil
		}
		if errors.Is(err, usecase.ErrDuplicateTransaction) {
			logger.Info("duplicate transaction rejected")
			return nil, status.Error(codes.AlreadyExists, err.Error())
		}
		logger.WithError(err).Error("transaction failed")
		return nil, status.Error(codes.Internal, err.Error())
	}

	logger.Info("transaction committed")
	return &pb.SubmitResponse{
		Success: true,
		TxHash:  env.TxID.String(),
	}, nil
}

func (s *GrpcServer) GetAccount(ctx context.Context, req *pb.GetAccountRequest) (*pb.GetAccountResponse, error) {
	pubKey, err := domain.ParsePublicKey(req.PubKey)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	account, err := s.core.GetAccount(ctx, pubKey)
	if err != nil {
		if errors.Is(err, usecase.ErrAccountNotFound) {
			return nil, status.Error(codes.NotFound, err.Error())
		}
		return nil, status.Error(codes.Internal, err.Error())
	}
	return &pb.GetAccountResponse{
		Account: &pb.AccountInfo{
			PubKey:       account.PubKey.String(),
			Name:         account.Name,
			Balance:      account.Balance,
			FrozenAmount: account.FrozenAmount,
			HistoryLen:   account.HistoryLen,
			HistoryHash:  account.HistoryHash.String(),
		},
	}, nil
}

func (s *GrpcServer) GetAccountHistory(ctx context.Context, req *pb.GetAccountHistoryRequest) (*pb.GetAccountHistoryResponse, error) {
	pubKey, err := domain.ParsePublicKey(req.PubKey)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	history, err := s.core.GetAccountHistory(ctx, pubKey)
	if err != nil {
		if errors.Is(err, usecase.ErrAccountNotFound) {
			return nil, status.Error(codes.NotFound, err.Error())
		}
		return nil, status.Error(codes.Internal, err.Error())
	}
	hashes := make([]string, len(history))
	for i, h := range history {
		hashes[i] = h.String()
	}
	return &pb.GetAccountHistoryResponse{TxHashes: hashes}, nil
}

func (s *GrpcServer) GetPendingTransfer(ctx context.Context, req *pb.GetPendingTransferRequest) (*pb.GetPendingTransferResponse, error) {
	txHash, err := domain.ParseHash(req.TxHash)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	transfer, err := s.core.GetPendingTransfer(ctx, txHash)
	if err != nil {
		if errors.Is(err, usecase.ErrTransferNotFound) {
			return nil, status.Error(codes.NotFound, err.Error())
		}
		return nil, status.Error(codes.Internal, err.Error())
	}
	return &pb.GetPendingTransferResponse{
		Transfer: &pb.PendingTransferInfo{
			TxHash:    transfer.TxHash.String(),
			From:      transfer.From.String(),
			To:        transfer.To.String(),
			Approver:  transfer.Approver.String(),
			Amount:    transfer.Amount,
			Fulfilled: transfer.Fulfilled,
		},
	}, nil
}

func (s *GrpcServer) GetStateHash(ctx context.Context, req *pb.GetStateHashRequest) (*pb.GetStateHashResponse, error) {
	return &pb.GetStateHashResponse{
		StateHash: s.core.StateHash(ctx).String(),
	}, nil
}

// payloadFromRequest converts the oneof payload into the domain type.
func payloadFromRequest(req *pb.SubmitRequest) (domain.Payload, error) {
	switch p := req.Payload.(type) {
	case *pb.SubmitRequest_CreateAccount:
		return domain.CreateAccount{Name: p.CreateAccount.Name}, nil
	case *pb.SubmitRequest_Issue:
		return domain.Issue{Amount: p.Issue.Amount, Seed: p.Issue.Seed}, nil
	case *pb.SubmitRequest_Transfer:
		to, err := domain.ParsePublicKey(p.Transfer.To)
		if err != nil {
			return nil, err
		}
		approver, err := domain.ParsePublicKey(p.Transfer.Approver)
		if err != nil {
			return nil, err
		}
		return domain.Transfer{
			To:       to,
			Approver: approver,
			Amount:   p.Transfer.Amount,
			Seed:     p.Transfer.Seed,
		}, nil
	case *pb.SubmitRequest_ConfirmTransfer:
		txHash, err := domain.ParseHash(p.ConfirmTransfer.TxHash)
		if err != nil {
			return nil, err
		}
		return domain.ConfirmTransfer{TxHash: txHash, Seed: p.ConfirmTransfer.Seed}, nil
	default:
		return nil, errMissingPayload
	}
}
