package bot

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
)

// MissingPermissions returns the permission bits present in required but
// absent from granted.
func MissingPermissions(required, granted int64) int64 {
	return required &^ granted
}

// permissionNames maps each permission bit to its display name, in bit
// order.
var permissionNames = []struct {
	bit  int64
	name string
}{
	{discordgo.PermissionCreateInstantInvite, "Create Instant Invite"},
	{discordgo.PermissionKickMembers, "Kick Members"},
	{discordgo.PermissionBanMembers, "Ban Members"},
	{discordgo.PermissionAdministrator, "Administrator"},
	{discordgo.PermissionManageChannels, "Manage Channels"},
	{discordgo.PermissionManageServer, "Manage Server"},
	{discordgo.PermissionAddReactions, "Add Reactions"},
	{discordgo.PermissionViewAuditLogs, "View Audit Log"},
	{discordgo.PermissionViewChannel, "View Channel"},
	{discordgo.PermissionSendMessages, "Send Messages"},
	{discordgo.PermissionSendTTSMessages, "Send TTS Messages"},
	{discordgo.PermissionManageMessages, "Manage Messages"},
	{discordgo.PermissionEmbedLinks, "Embed Links"},
	{discordgo.PermissionAttachFiles, "Attach Files"},
	{discordgo.PermissionReadMessageHistory, "Read Message History"},
	{discordgo.PermissionMentionEveryone, "Mention Everyone"},
	{discordgo.PermissionUseExternalEmojis, "Use External Emojis"},
	{discordgo.PermissionVoiceConnect, "Connect"},
	{discordgo.PermissionVoiceSpeak, "Speak"},
	{discordgo.PermissionVoiceMuteMembers, "Mute Members"},
	{discordgo.PermissionVoiceDeafenMembers, "Deafen Members"},
	{discordgo.PermissionVoiceMoveMembers, "Move Members"},
	{discordgo.PermissionVoiceUseVAD, "Use Voice Activity"},
	{discordgo.PermissionChangeNickname, "Change Nickname"},
	{discordgo.PermissionManageNicknames, "Manage Nicknames"},
	{discordgo.PermissionManageRoles, "Manage Roles"},
	{discordgo.PermissionManageWebhooks, "Manage Webhooks"},
	{discordgo.PermissionManageEmojis, "Manage Emojis"},
	{discordgo.PermissionUseSlashCommands, "Use Application Commands"},
	{discordgo.PermissionModerateMembers, "Timeout Members"},
}

// PermissionNames returns the display names of the set permission bits, in
// bit order. Bits without a known name are rendered in hex so they are
// never silently dropped.
func PermissionNames(perms int64) []string {
	var names []string
	for _, p := range permissionNames {
		if perms&p.bit != 0 {
			names = append(names, p.name)
			perms &^= p.bit
		}
	}
	if perms != 0 {
		names = append(names, fmt.Sprintf("0x%x", perms))
	}
	return names
}

// PrettyPermissions returns a human-readable listing of the set permission
// bits, one per line. Returns the empty string for an empty bitset.
func PrettyPermissions(perms int64) string {
	return strings.Join(PermissionNames(perms), "\n")
}
