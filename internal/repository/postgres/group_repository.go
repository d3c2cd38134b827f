package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/prasetyadi/pkl-placement/internal/domain"
)

const uniqueViolation = "23505"

type groupRepository struct {
	db *sql.DB
}

func NewGroupRepository(db *sql.DB) *groupRepository {
	return &groupRepository{db: db}
}

func (r *groupRepository) statusID(ctx context.Context, executor DBExecutor, status domain.GroupStatus) (int, error) {
	var id int
	err := executor.QueryRowContext(ctx, "SELECT id FROM group_statuses WHERE name = $1", string(status)).Scan(&id)
	return id, err
}

// casVersion is the optimistic guard shared by every member write: it bumps
// the group version if and only if the caller saw the current one. Member
// rows never change without this bump, so a stale submit cannot miss a
// response that landed in between.
func (r *groupRepository) casVersion(ctx context.Context, tx *sql.Tx, groupDBID, version int) error {
	result, err := tx.ExecContext(
		ctx,
		"UPDATE group_registrations SET version = version + 1 WHERE id = $1 AND version = $2",
		groupDBID,
		version,
	)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		var exists bool
		if err := tx.QueryRowContext(ctx, "SELECT EXISTS(SELECT 1 FROM group_registrations WHERE id = $1)", groupDBID).Scan(&exists); err != nil {
			return err
		}
		if !exists {
			return domain.NewNotFoundError("group " + intToGroupID(groupDBID))
		}
		return domain.ErrConflict
	}

	return nil
}

func (r *groupRepository) Create(ctx context.Context, group *domain.GroupRegistration) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	statusID, err := r.statusID(ctx, tx, domain.GroupStatusDraft)
	if err != nil {
		return err
	}

	companyDBID, err := companyIDToInt(group.CompanyID)
	if err != nil {
		return domain.NewNotFoundError("company " + group.CompanyID)
	}

	leaderDBID, err := studentIDToInt(group.LeaderID)
	if err != nil {
		return domain.NewNotFoundError("student " + group.LeaderID)
	}

	query := `
		INSERT INTO group_registrations (company_id, leader_id, status_id, note, start_date, end_date, version, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, 1, $7)
		RETURNING id, created_at
	`

	now := time.Now()
	var groupDBID int
	err = tx.QueryRowContext(
		ctx,
		query,
		companyDBID,
		leaderDBID,
		statusID,
		group.Note,
		group.StartDate,
		group.EndDate,
		now,
	).Scan(&groupDBID, &group.CreatedAt)
	if err != nil {
		return err
	}

	memberQuery := `
		INSERT INTO group_members (group_id, student_id, is_leader, status, joined_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	for i := range group.Members {
		member := &group.Members[i]
		studentDBID, err := studentIDToInt(member.StudentID)
		if err != nil {
			return domain.NewNotFoundError("student " + member.StudentID)
		}

		var memberDBID int
		err = tx.QueryRowContext(
			ctx,
			memberQuery,
			groupDBID,
			studentDBID,
			member.IsLeader,
			string(member.Status),
			member.JoinedAt,
		).Scan(&memberDBID)
		if err != nil {
			return err
		}
		member.ID = intToMemberID(memberDBID)
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	group.ID = intToGroupID(groupDBID)
	group.Status = domain.GroupStatusDraft
	group.Version = 1
	return nil
}

func (r *groupRepository) GetByID(ctx context.Context, id string) (*domain.GroupRegistration, error) {
	groupDBID, err := groupIDToInt(id)
	if err != nil {
		return nil, domain.NewNotFoundError("group " + id)
	}
	return r.getByDBID(ctx, groupDBID)
}

func (r *groupRepository) getByDBID(ctx context.Context, groupDBID int) (*domain.GroupRegistration, error) {
	query := `
		SELECT g.id, g.company_id, c.name, g.leader_id, st.name, g.note,
		       g.start_date, g.end_date, COALESCE(g.reject_reason, ''),
		       g.version, g.created_at, g.submitted_at, g.approved_at
		FROM group_registrations g
		JOIN companies c ON g.company_id = c.id
		JOIN group_statuses st ON g.status_id = st.id
		WHERE g.id = $1
	`

	group := &domain.GroupRegistration{}
	var companyDBID, leaderDBID int
	var statusName string
	var submittedAt, approvedAt sql.NullTime
	err := r.db.QueryRowContext(ctx, query, groupDBID).Scan(
		&groupDBID,
		&companyDBID,
		&group.CompanyName,
		&leaderDBID,
		&statusName,
		&group.Note,
		&group.StartDate,
		&group.EndDate,
		&group.RejectReason,
		&group.Version,
		&group.CreatedAt,
		&submittedAt,
		&approvedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewNotFoundError("group " + intToGroupID(groupDBID))
		}
		return nil, err
	}

	group.ID = intToGroupID(groupDBID)
	group.CompanyID = intToCompanyID(companyDBID)
	group.LeaderID = intToStudentID(leaderDBID)
	group.Status = domain.GroupStatus(statusName)
	if submittedAt.Valid {
		group.SubmittedAt = &submittedAt.Time
	}
	if approvedAt.Valid {
		group.ApprovedAt = &approvedAt.Time
	}

	members, err := r.membersByGroupDBID(ctx, groupDBID)
	if err != nil {
		return nil, err
	}
	group.Members = members

	return group, nil
}

func (r *groupRepository) membersByGroupDBID(ctx context.Context, groupDBID int) ([]domain.Member, error) {
	query := `
		SELECT m.id, m.student_id, s.name, m.is_leader, m.status, m.joined_at, m.responded_at
		FROM group_members m
		JOIN students s ON m.student_id = s.id
		WHERE m.group_id = $1
		ORDER BY m.joined_at, m.id
	`

	rows, err := r.db.QueryContext(ctx, query, groupDBID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var members []domain.Member
	for rows.Next() {
		var member domain.Member
		var memberDBID, studentDBID int
		var status string
		var respondedAt sql.NullTime
		err := rows.Scan(
			&memberDBID,
			&studentDBID,
			&member.StudentName,
			&member.IsLeader,
			&status,
			&member.JoinedAt,
			&respondedAt,
		)
		if err != nil {
			return nil, err
		}
		member.ID = intToMemberID(memberDBID)
		member.StudentID = intToStudentID(studentDBID)
		member.Status = domain.InvitationStatus(status)
		if respondedAt.Valid {
			member.RespondedAt = &respondedAt.Time
		}
		members = append(members, member)
	}

	return members, rows.Err()
}

func (r *groupRepository) GetByMemberID(ctx context.Context, memberID string) (*domain.GroupRegistration, error) {
	memberDBID, err := memberIDToInt(memberID)
	if err != nil {
		return nil, domain.NewNotFoundError("invitation " + memberID)
	}

	var groupDBID int
	err = r.db.QueryRowContext(ctx, "SELECT group_id FROM group_members WHERE id = $1", memberDBID).Scan(&groupDBID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewNotFoundError("invitation " + memberID)
		}
		return nil, err
	}

	return r.getByDBID(ctx, groupDBID)
}

func (r *groupRepository) UpdateDraft(ctx context.Context, id string, version int, companyID, note string, start, end time.Time) error {
	groupDBID, err := groupIDToInt(id)
	if err != nil {
		return domain.NewNotFoundError("group " + id)
	}

	companyDBID, err := companyIDToInt(companyID)
	if err != nil {
		return domain.NewNotFoundError("company " + companyID)
	}

	query := `
		UPDATE group_registrations
		SET company_id = $2, note = $3, start_date = $4, end_date = $5, version = version + 1
		WHERE id = $1 AND version = $6
	`

	result, err := r.db.ExecContext(ctx, query, groupDBID, companyDBID, note, start, end, version)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		var exists bool
		if err := r.db.QueryRowContext(ctx, "SELECT EXISTS(SELECT 1 FROM group_registrations WHERE id = $1)", groupDBID).Scan(&exists); err != nil {
			return err
		}
		if !exists {
			return domain.NewNotFoundError("group " + id)
		}
		return domain.ErrConflict
	}

	return nil
}

func (r *groupRepository) UpdateStatus(ctx context.Context, id string, version int, status domain.GroupStatus, reason string) error {
	groupDBID, err := groupIDToInt(id)
	if err != nil {
		return domain.NewNotFoundError("group " + id)
	}

	statusID, err := r.statusID(ctx, r.db, status)
	if err != nil {
		return err
	}

	var query string
	args := []any{groupDBID, statusID, version}
	switch status {
	case domain.GroupStatusSubmitted:
		query = `
			UPDATE group_registrations
			SET status_id = $2, submitted_at = NOW(), version = version + 1
			WHERE id = $1 AND version = $3
		`
	case domain.GroupStatusDraft:
		// reopening a draft after a failed capacity reservation
		query = `
			UPDATE group_registrations
			SET status_id = $2, submitted_at = NULL, version = version + 1
			WHERE id = $1 AND version = $3
		`
	case domain.GroupStatusApproved:
		query = `
			UPDATE group_registrations
			SET status_id = $2, approved_at = NOW(), version = version + 1
			WHERE id = $1 AND version = $3
		`
	case domain.GroupStatusRejected:
		query = `
			UPDATE group_registrations
			SET status_id = $2, reject_reason = $4, version = version + 1
			WHERE id = $1 AND version = $3
		`
		args = append(args, reason)
	default:
		query = `
			UPDATE group_registrations
			SET status_id = $2, version = version + 1
			WHERE id = $1 AND version = $3
		`
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		var exists bool
		if err := r.db.QueryRowContext(ctx, "SELECT EXISTS(SELECT 1 FROM group_registrations WHERE id = $1)", groupDBID).Scan(&exists); err != nil {
			return err
		}
		if !exists {
			return domain.NewNotFoundError("group " + id)
		}
		return domain.ErrConflict
	}

	return nil
}

func (r *groupRepository) AddMember(ctx context.Context, groupID string, version int, member *domain.Member) error {
	groupDBID, err := groupIDToInt(groupID)
	if err != nil {
		return domain.NewNotFoundError("group " + groupID)
	}

	studentDBID, err := studentIDToInt(member.StudentID)
	if err != nil {
		return domain.NewNotFoundError("student " + member.StudentID)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := r.casVersion(ctx, tx, groupDBID, version); err != nil {
		return err
	}

	query := `
		INSERT INTO group_members (group_id, student_id, is_leader, status, joined_at)
		VALUES ($1, $2, FALSE, $3, $4)
		RETURNING id
	`

	var memberDBID int
	err = tx.QueryRowContext(ctx, query, groupDBID, studentDBID, string(member.Status), member.JoinedAt).Scan(&memberDBID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return domain.ErrDuplicateInvitation
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	member.ID = intToMemberID(memberDBID)
	return nil
}

func (r *groupRepository) RemoveMember(ctx context.Context, memberID string, groupID string, version int) error {
	memberDBID, err := memberIDToInt(memberID)
	if err != nil {
		return domain.NewNotFoundError("invitation " + memberID)
	}

	groupDBID, err := groupIDToInt(groupID)
	if err != nil {
		return domain.NewNotFoundError("group " + groupID)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := r.casVersion(ctx, tx, groupDBID, version); err != nil {
		return err
	}

	result, err := tx.ExecContext(
		ctx,
		"DELETE FROM group_members WHERE id = $1 AND group_id = $2 AND is_leader = FALSE",
		memberDBID,
		groupDBID,
	)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return domain.NewNotFoundError("invitation " + memberID)
	}

	return tx.Commit()
}

func (r *groupRepository) RespondMember(ctx context.Context, memberID string, groupID string, version int, status domain.InvitationStatus, respondedAt time.Time) error {
	memberDBID, err := memberIDToInt(memberID)
	if err != nil {
		return domain.NewNotFoundError("invitation " + memberID)
	}

	groupDBID, err := groupIDToInt(groupID)
	if err != nil {
		return domain.NewNotFoundError("group " + groupID)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := r.casVersion(ctx, tx, groupDBID, version); err != nil {
		return err
	}

	query := `
		UPDATE group_members
		SET status = $3, responded_at = $4
		WHERE id = $1 AND group_id = $2 AND status = 'PENDING'
	`

	result, err := tx.ExecContext(ctx, query, memberDBID, groupDBID, string(status), respondedAt)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return domain.ErrAlreadyResponded
	}

	return tx.Commit()
}

func (r *groupRepository) ListByLeader(ctx context.Context, leaderID string) ([]*domain.GroupSummary, error) {
	leaderDBID, err := studentIDToInt(leaderID)
	if err != nil {
		return nil, domain.NewNotFoundError("student " + leaderID)
	}

	query := `
		SELECT g.id, g.company_id, c.name, st.name, COUNT(m.id), g.created_at
		FROM group_registrations g
		JOIN companies c ON g.company_id = c.id
		JOIN group_statuses st ON g.status_id = st.id
		LEFT JOIN group_members m ON m.group_id = g.id
		WHERE g.leader_id = $1
		GROUP BY g.id, g.company_id, c.name, st.name, g.created_at
		ORDER BY g.created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, leaderDBID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var groups []*domain.GroupSummary
	for rows.Next() {
		summary := &domain.GroupSummary{}
		var groupDBID, companyDBID int
		var statusName string
		err := rows.Scan(
			&groupDBID,
			&companyDBID,
			&summary.CompanyName,
			&statusName,
			&summary.MemberCount,
			&summary.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		summary.ID = intToGroupID(groupDBID)
		summary.CompanyID = intToCompanyID(companyDBID)
		summary.Status = domain.GroupStatus(statusName)
		groups = append(groups, summary)
	}

	return groups, rows.Err()
}

func (r *groupRepository) ListInvitationsByStudent(ctx context.Context, studentID string) ([]*domain.Invitation, error) {
	studentDBID, err := studentIDToInt(studentID)
	if err != nil {
		return nil, domain.NewNotFoundError("student " + studentID)
	}

	query := `
		SELECT m.id, g.id, st.name, c.name, leader.name, m.status, m.joined_at, m.responded_at
		FROM group_members m
		JOIN group_registrations g ON m.group_id = g.id
		JOIN group_statuses st ON g.status_id = st.id
		JOIN companies c ON g.company_id = c.id
		JOIN students leader ON g.leader_id = leader.id
		WHERE m.student_id = $1 AND m.is_leader = FALSE
		ORDER BY m.joined_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, studentDBID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var invitations []*domain.Invitation
	for rows.Next() {
		invitation := &domain.Invitation{StudentID: studentID}
		var memberDBID, groupDBID int
		var groupStatus, memberStatus string
		var respondedAt sql.NullTime
		err := rows.Scan(
			&memberDBID,
			&groupDBID,
			&groupStatus,
			&invitation.CompanyName,
			&invitation.LeaderName,
			&memberStatus,
			&invitation.InvitedAt,
			&respondedAt,
		)
		if err != nil {
			return nil, err
		}
		invitation.ID = intToMemberID(memberDBID)
		invitation.GroupID = intToGroupID(groupDBID)
		invitation.GroupStatus = domain.GroupStatus(groupStatus)
		invitation.Status = domain.InvitationStatus(memberStatus)
		if respondedAt.Valid {
			invitation.RespondedAt = &respondedAt.Time
		}
		invitations = append(invitations, invitation)
	}

	return invitations, rows.Err()
}
