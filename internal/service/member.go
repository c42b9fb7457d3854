package service

import (
	"context"

	"openshelf-backend/internal/domain"
	"openshelf-backend/internal/repository"
)

type memberService struct {
	memberRepo repository.MemberRepository
	loanRepo   repository.LoanRepository
}

func NewMemberService(memberRepo repository.MemberRepository, loanRepo repository.LoanRepository) MemberService {
	return &memberService{memberRepo: memberRepo, loanRepo: loanRepo}
}

func (s *memberService) GetProfile(ctx context.Context, memberID int32) (*domain.MemberProfile, error) {
	member, err := s.memberRepo.GetByID(ctx, memberID)
	if err != nil {
		return nil, err
	}
	active, total, fines, err := s.loanRepo.MemberLoanStats(ctx, memberID)
	if err != nil {
		return nil, err
	}
	return &domain.MemberProfile{
		Member:         *member,
		ActiveLoans:    active,
		TotalLoans:     total,
		FinesOwedCents: fines,
	}, nil
}

func (s *memberService) UpdateProfile(ctx context.Context, memberID int32, name, phone, address string) (*domain.Member, error) {
	member, err := s.memberRepo.GetByID(ctx, memberID)
	if err != nil {
		return nil, err
	}
	member.Name = name
	member.PhoneNumber = phone
	member.Address = address
	if err := s.memberRepo.Update(ctx, member); err != nil {
		return nil, err
	}
	return member, nil
}
