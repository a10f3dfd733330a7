package tracker

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	bCtx "github.com/x-xyz/nftmint/base/ctx"
	"github.com/x-xyz/nftmint/domain"
)

type embedSender interface {
	ChannelMessageSendEmbed(channelID string, embed *discordgo.MessageEmbed) (*discordgo.Message, error)
}

type MintAnnouncerCfg struct {
	BotKey    string
	ChannelId string
	Contract  *domain.ContractInfo
	Metadata  domain.MetadataUseCase
}

type mintAnnouncer struct {
	channelId string
	contract  *domain.ContractInfo
	metadata  domain.MetadataUseCase
	discord   embedSender
}

// NewMintAnnouncer posts every new mint to a discord channel
func NewMintAnnouncer(cfg *MintAnnouncerCfg) (MintListener, error) {
	discord, err := discordgo.New(fmt.Sprintf("Bot %s", cfg.BotKey))
	if err != nil {
		return nil, err
	}
	return newMintAnnouncer(cfg, discord), nil
}

func newMintAnnouncer(cfg *MintAnnouncerCfg, discord embedSender) *mintAnnouncer {
	return &mintAnnouncer{
		channelId: cfg.ChannelId,
		contract:  cfg.Contract,
		metadata:  cfg.Metadata,
		discord:   discord,
	}
}

func (a *mintAnnouncer) Name() string {
	return "mint-announcer"
}

func (a *mintAnnouncer) OnMint(c bCtx.Ctx, token *domain.IndexedToken) error {
	msg := &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("Token #%s minted!", token.TokenId),
		Description: a.contract.TokenMarketplaceUrl(token.TokenId),
		URL:         a.contract.TokenExplorerUrl(token.TokenId),
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Owner", Value: string(token.Owner)},
			{Name: "Tx", Value: string(token.MintTxHash)},
		},
	}

	// an announcement without metadata is still worth sending
	if md, err := a.metadata.GetFromUrl(c, token.TokenURI); err != nil {
		c.WithField("err", err).Warn("metadata.GetFromUrl failed")
	} else {
		msg.Title = fmt.Sprintf("%s minted!", md.Name)
		msg.Image = &discordgo.MessageEmbedImage{URL: md.Image}
	}

	if _, err := a.discord.ChannelMessageSendEmbed(a.channelId, msg); err != nil {
		return err
	}
	return nil
}
