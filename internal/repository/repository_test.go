package repository_test

import (
	"context"
	"errors"
	"time"

	"chainflow/internal/db"
	"chainflow/internal/repository"
	"chainflow/internal/repository/fake"

	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("FlowRepository", func() {
	var (
		repo        *repository.FlowRepository
		fakeStorage *fake.Storage
		ctx         context.Context
		fakeErr     error
	)

	BeforeEach(func() {
		fakeStorage = new(fake.Storage)
		repo = repository.NewFlowRepository(fakeStorage)
		ctx = context.Background()
		fakeErr = errors.New("fake error")
	})

	Describe("MigrateAndSeed", func() {
		var (
			users []repository.User
			err   error
		)

		BeforeEach(func() {
			users = []repository.User{{ID: uuid.NewString(), Username: "alice", PasswordHash: "hash"}}
		})

		JustBeforeEach(func() {
			err = repo.MigrateAndSeed(ctx, users)
		})

		When("migration succeeds", func() {
			It("should migrate tables and seed users", func() {
				Expect(err).NotTo(HaveOccurred())

				Expect(fakeStorage.MigrateModelsCallCount()).To(Equal(1))
				tables := fakeStorage.MigrateModelsArgsForCall(0)
				Expect(tables).To(HaveLen(2))
				Expect(tables[0]).To(BeAssignableToTypeOf(&repository.FlowRecord{}))
				Expect(tables[1]).To(BeAssignableToTypeOf(&repository.User{}))

				Expect(fakeStorage.SeedCallCount()).To(Equal(1))
				_, records := fakeStorage.SeedArgsForCall(0)
				Expect(records).To(Equal(&users))
			})
		})

		When("there is nobody to seed", func() {
			BeforeEach(func() {
				users = nil
			})

			It("should only migrate", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(fakeStorage.SeedCallCount()).To(Equal(0))
			})
		})

		When("migration fails", func() {
			BeforeEach(func() {
				fakeStorage.MigrateModelsReturns(errors.New("migration error"))
			})

			It("should return an error", func() {
				Expect(err).To(MatchError("migrate table(s): migration error"))
				Expect(fakeStorage.SeedCallCount()).To(Equal(0))
			})
		})

		When("seeding data fails", func() {
			BeforeEach(func() {
				fakeStorage.SeedReturns(errors.New("seed error"))
			})

			It("should return an error", func() {
				Expect(err).To(MatchError("seed database: seed error"))
			})
		})
	})

	Describe("SaveFlow", func() {
		var (
			record repository.FlowRecord
			err    error
		)

		BeforeEach(func() {
			hash := "0x01"
			record = repository.FlowRecord{
				ID:          uuid.NewString(),
				Kind:        "vault-deposit",
				Owner:       "0x00000000000000000000000000000000000000aa",
				Amount:      "10",
				Step:        1,
				Step1TxHash: &hash,
			}
		})

		JustBeforeEach(func() {
			err = repo.SaveFlow(ctx, record)
		})

		When("the upsert succeeds", func() {
			It("should store the record", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(fakeStorage.UpsertCallCount()).To(Equal(1))
				_, arg := fakeStorage.UpsertArgsForCall(0)
				Expect(arg).To(Equal(&record))
			})
		})

		When("the upsert fails", func() {
			BeforeEach(func() {
				fakeStorage.UpsertReturns(fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
				Expect(err).To(MatchError(ContainSubstring(record.ID)))
			})
		})
	})

	Describe("GetFlow", func() {
		var (
			id     string
			record repository.FlowRecord
			err    error
		)

		BeforeEach(func() {
			id = uuid.NewString()
		})

		JustBeforeEach(func() {
			record, err = repo.GetFlow(ctx, id)
		})

		When("the flow exists", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByStub = func(_ context.Context, column string, value any, dest any) error {
					r := dest.(*repository.FlowRecord)
					*r = repository.FlowRecord{ID: value.(string), Step: 3}
					return nil
				}
			})

			It("should return it", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(record.ID).To(Equal(id))
				Expect(record.Step).To(Equal(3))

				_, col, _, _ := fakeStorage.GetOneByArgsForCall(0)
				Expect(col).To(Equal("id"))
			})
		})

		When("the flow does not exist", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByReturns(db.ErrNotFound)
			})

			It("should return flow not found", func() {
				Expect(err).To(MatchError(repository.ErrFlowNotFound))
			})
		})

		When("database error occurs", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByReturns(fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("GetUserFlows", func() {
		var (
			userID  string
			records []repository.FlowRecord
			err     error
		)

		BeforeEach(func() {
			userID = uuid.NewString()
		})

		JustBeforeEach(func() {
			records, err = repo.GetUserFlows(ctx, userID)
		})

		When("the user has flows", func() {
			BeforeEach(func() {
				now := time.Now()
				fakeStorage.GetAllByStub = func(_ context.Context, column string, value any, dest any) error {
					rs := dest.(*[]repository.FlowRecord)
					*rs = []repository.FlowRecord{
						{ID: "old", CreatedAt: now.Add(-time.Hour)},
						{ID: "new", CreatedAt: now},
					}
					return nil
				}
			})

			It("should return them newest first", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(records).To(HaveLen(2))
				Expect(records[0].ID).To(Equal("new"))
				Expect(records[1].ID).To(Equal("old"))

				_, col, val, _ := fakeStorage.GetAllByArgsForCall(0)
				Expect(col).To(Equal("user_id"))
				Expect(val).To(Equal([]string{userID}))
			})
		})

		When("the user has no flows", func() {
			It("should return an empty slice", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(records).To(BeEmpty())
			})
		})

		When("database error occurs", func() {
			BeforeEach(func() {
				fakeStorage.GetAllByReturns(fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("GetUserFromDB", func() {
		var (
			user     repository.User
			err      error
			username string
			testUser repository.User
		)

		BeforeEach(func() {
			username = "alice"
			testUser = repository.User{
				ID:           uuid.NewString(),
				Username:     username,
				PasswordHash: "hashed_password",
			}
		})

		JustBeforeEach(func() {
			user, err = repo.GetUserFromDB(ctx, username)
		})

		When("user exists", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByStub = func(_ context.Context, column string, value any, dest any) error {
					u := dest.(*repository.User)
					*u = testUser
					return nil
				}
			})

			It("should return the user", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(user).To(Equal(testUser))

				_, col, val, _ := fakeStorage.GetOneByArgsForCall(0)
				Expect(col).To(Equal("username"))
				Expect(val).To(Equal(username))
			})
		})

		When("user doesn't exist", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByReturns(db.ErrNotFound)
			})

			It("should return user not found error", func() {
				Expect(err).To(MatchError(repository.ErrUserNotFound))
			})
		})

		When("database error occurs", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByReturns(fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})
})
